package bitcoll

import "iter"

// Iter drains a collection it holds by value, from either end. It is a
// single-word value just like the collection itself, so converting
// between the two, via Iterate and Coll, is free.
//
// Iter suits callers that alternate ends or hand the cursor around;
// for plain loops the range-over-func forms All and Backward are more
// convenient.
type Iter[W Word, I any, S Spec[W, I]] struct {
	c Coll[W, I, S]
}

// Iterate returns a double-ended iterator over the collection's items.
// The iterator owns a copy of the collection; draining it leaves c
// unchanged.
func (c Coll[W, I, S]) Iterate() Iter[W, I, S] {
	return Iter[W, I, S]{c}
}

// Next removes and returns the item with the lowest bit position, or
// false when the iterator is exhausted.
func (it *Iter[W, I, S]) Next() (I, bool) {
	return it.c.PopLSB()
}

// NextBack removes and returns the item with the highest bit position,
// or false when the iterator is exhausted.
func (it *Iter[W, I, S]) NextBack() (I, bool) {
	return it.c.PopMSB()
}

// Len returns the number of items not yet yielded.
func (it Iter[W, I, S]) Len() int {
	return it.c.Len()
}

// Coll returns the items not yet yielded as a collection.
func (it Iter[W, I, S]) Coll() Coll[W, I, S] {
	return it.c
}

// All returns an iterator over the collection's items in increasing
// bit-position order. Each use of the iterator drains a fresh copy, so
// it can be ranged over more than once and never modifies c.
func (c Coll[W, I, S]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		rest := c
		for x, ok := rest.PopLSB(); ok; x, ok = rest.PopLSB() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over the collection's items in
// decreasing bit-position order.
func (c Coll[W, I, S]) Backward() iter.Seq[I] {
	return func(yield func(I) bool) {
		rest := c
		for x, ok := rest.PopMSB(); ok; x, ok = rest.PopMSB() {
			if !yield(x) {
				return
			}
		}
	}
}
