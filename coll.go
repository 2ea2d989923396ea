package bitcoll

import (
	"fmt"
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Word is the set of integer types usable as a collection's backing word.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Spec binds an item type to a backing word. It supplies the two facts
// a collection cannot derive on its own: which bit positions are valid,
// and which bit position a given item occupies.
//
// Implementations should be empty struct types; a Spec is only ever
// used through its zero value, so any state it carried would be ignored.
//
// The mask is trusted. Every bit it covers must be the position of a
// constructible item, otherwise extraction of the least or most
// significant item from a collection holding such a bit yields an item
// value that was never valid.
type Spec[W Word, I any] interface {
	// Mask returns the set of valid bit positions as a word with
	// those bits set.
	Mask() W

	// Bit returns the bit position of x, counted from the least
	// significant bit.
	Bit(x I) uint
}

// Enum is a ready-made Spec for item types that are integer
// enumeration values numbered from zero, with every bit of the backing
// word valid.
type Enum[W Word, I constraints.Integer] struct{}

func (Enum[W, I]) Mask() W { return ^W(0) }

func (Enum[W, I]) Bit(x I) uint { return uint(x) }

// Coll is a collection of items packed into a single backing word of
// type W, as described by the spec S. It is a plain value: copying it
// copies the collection, and no operation allocates.
//
// The zero value is the empty collection.
type Coll[W Word, I any, S Spec[W, I]] struct {
	bits W
}

// Full returns the collection holding every valid item.
func Full[W Word, I any, S Spec[W, I]]() Coll[W, I, S] {
	var s S
	return Coll[W, I, S]{bits: s.Mask()}
}

// Empty returns the empty collection. It is equivalent to the zero
// value and exists for symmetry with Full.
func Empty[W Word, I any, S Spec[W, I]]() Coll[W, I, S] {
	return Coll[W, I, S]{}
}

// Of returns the collection holding exactly the given items.
func Of[W Word, I any, S Spec[W, I]](xs ...I) Coll[W, I, S] {
	var c Coll[W, I, S]
	for _, x := range xs {
		c.Insert(x)
	}
	return c
}

// Make returns the collection with backing word raw. Bits outside the
// spec's mask are discarded.
func Make[W Word, I any, S Spec[W, I]](raw W) Coll[W, I, S] {
	var s S
	return Coll[W, I, S]{bits: raw & s.Mask()}
}

// Collect returns the collection holding every item yielded by seq.
func Collect[W Word, I any, S Spec[W, I]](seq iter.Seq[I]) Coll[W, I, S] {
	var c Coll[W, I, S]
	c.InsertSeq(seq)
	return c
}

// singleBit returns the word with only x's bit set.
func singleBit[W Word, I any, S Spec[W, I]](x I) W {
	var s S
	return W(1) << s.Bit(x)
}

// Bits returns the backing word.
func (c Coll[W, I, S]) Bits() W {
	return c.bits
}

// Len returns the number of items in the collection.
func (c Coll[W, I, S]) Len() int {
	return bits.OnesCount64(uint64(c.bits))
}

// IsEmpty reports whether the collection holds no items.
func (c Coll[W, I, S]) IsEmpty() bool {
	return c.bits == 0
}

// HasMultiple reports whether the collection holds more than one item.
// It is cheaper than comparing Len against 2.
func (c Coll[W, I, S]) HasMultiple() bool {
	return c.bits&(c.bits-1) != 0
}

// Contains reports whether the collection holds x.
func (c Coll[W, I, S]) Contains(x I) bool {
	b := singleBit[W, I, S](x)
	return c.bits&b == b
}

// ContainsAll reports whether every item of o is also in c.
func (c Coll[W, I, S]) ContainsAll(o Coll[W, I, S]) bool {
	return c.bits&o.bits == o.bits
}

// lsbIndex and msbIndex require a non-empty collection.

func (c Coll[W, I, S]) lsbIndex() uint {
	return uint(bits.TrailingZeros64(uint64(c.bits)))
}

func (c Coll[W, I, S]) msbIndex() uint {
	return uint(bits.Len64(uint64(c.bits)) - 1)
}

// LSB returns the item on the least significant set bit, or false if
// the collection is empty.
func (c Coll[W, I, S]) LSB() (I, bool) {
	if c.IsEmpty() {
		var zero I
		return zero, false
	}
	return c.UncheckedLSB(), true
}

// MSB returns the item on the most significant set bit, or false if
// the collection is empty.
func (c Coll[W, I, S]) MSB() (I, bool) {
	if c.IsEmpty() {
		var zero I
		return zero, false
	}
	return c.UncheckedMSB(), true
}

// UncheckedLSB returns the item on the least significant set bit
// without checking for emptiness. The result on an empty collection is
// meaningless; callers must have established c.IsEmpty() == false, or
// should use LSB instead.
func (c Coll[W, I, S]) UncheckedLSB() I {
	return itemFromBit[I](c.lsbIndex())
}

// UncheckedMSB returns the item on the most significant set bit
// without checking for emptiness. The result on an empty collection is
// meaningless; callers must have established c.IsEmpty() == false, or
// should use MSB instead.
func (c Coll[W, I, S]) UncheckedMSB() I {
	return itemFromBit[I](c.msbIndex())
}

// RemoveLSB clears the least significant set bit. It is a no-op on an
// empty collection.
func (c *Coll[W, I, S]) RemoveLSB() {
	c.bits &= c.bits - 1
}

// RemoveMSB clears the most significant set bit. It is a no-op on an
// empty collection.
func (c *Coll[W, I, S]) RemoveMSB() {
	if !c.IsEmpty() {
		c.bits &^= W(1) << c.msbIndex()
	}
}

// PopLSB removes and returns the item on the least significant set
// bit, or false if the collection is empty.
func (c *Coll[W, I, S]) PopLSB() (I, bool) {
	x, ok := c.LSB()
	if ok {
		c.RemoveLSB()
	}
	return x, ok
}

// PopMSB removes and returns the item on the most significant set bit,
// or false if the collection is empty.
func (c *Coll[W, I, S]) PopMSB() (I, bool) {
	x, ok := c.MSB()
	if ok {
		c.bits &^= W(1) << c.msbIndex()
	}
	return x, ok
}

// Inserting returns c with x added.
func (c Coll[W, I, S]) Inserting(x I) Coll[W, I, S] {
	c.bits |= singleBit[W, I, S](x)
	return c
}

// Removing returns c with x removed.
func (c Coll[W, I, S]) Removing(x I) Coll[W, I, S] {
	c.bits &^= singleBit[W, I, S](x)
	return c
}

// Toggling returns c with x's bit flipped.
func (c Coll[W, I, S]) Toggling(x I) Coll[W, I, S] {
	c.bits ^= singleBit[W, I, S](x)
	return c
}

// Intersecting returns c reduced to x, that is, either the collection
// holding only x or the empty collection.
func (c Coll[W, I, S]) Intersecting(x I) Coll[W, I, S] {
	c.bits &= singleBit[W, I, S](x)
	return c
}

// Setting returns c with x added if on is true, removed otherwise.
func (c Coll[W, I, S]) Setting(x I, on bool) Coll[W, I, S] {
	if on {
		return c.Inserting(x)
	}
	return c.Removing(x)
}

// Insert adds x to the collection. It returns c to permit chaining.
func (c *Coll[W, I, S]) Insert(x I) *Coll[W, I, S] {
	c.bits |= singleBit[W, I, S](x)
	return c
}

// Remove removes x from the collection. It returns c to permit
// chaining.
func (c *Coll[W, I, S]) Remove(x I) *Coll[W, I, S] {
	c.bits &^= singleBit[W, I, S](x)
	return c
}

// Toggle flips x's bit. It returns c to permit chaining.
func (c *Coll[W, I, S]) Toggle(x I) *Coll[W, I, S] {
	c.bits ^= singleBit[W, I, S](x)
	return c
}

// Intersect reduces the collection to x, leaving it either holding
// only x or empty. It returns c to permit chaining.
func (c *Coll[W, I, S]) Intersect(x I) *Coll[W, I, S] {
	c.bits &= singleBit[W, I, S](x)
	return c
}

// Set adds x if on is true and removes it otherwise. It returns c to
// permit chaining.
func (c *Coll[W, I, S]) Set(x I, on bool) *Coll[W, I, S] {
	if on {
		return c.Insert(x)
	}
	return c.Remove(x)
}

// Union returns the items held by c, o or both.
func (c Coll[W, I, S]) Union(o Coll[W, I, S]) Coll[W, I, S] {
	c.bits |= o.bits
	return c
}

// Intersection returns the items held by both c and o.
func (c Coll[W, I, S]) Intersection(o Coll[W, I, S]) Coll[W, I, S] {
	c.bits &= o.bits
	return c
}

// Difference returns the items held by c but not by o.
func (c Coll[W, I, S]) Difference(o Coll[W, I, S]) Coll[W, I, S] {
	c.bits &^= o.bits
	return c
}

// SymmetricDifference returns the items held by exactly one of c and o.
func (c Coll[W, I, S]) SymmetricDifference(o Coll[W, I, S]) Coll[W, I, S] {
	c.bits ^= o.bits
	return c
}

// Complement returns the valid items not held by c. The result is
// passed through the masked construction path, so bits outside the
// spec's mask never appear.
func (c Coll[W, I, S]) Complement() Coll[W, I, S] {
	return Make[W, I, S](^c.bits)
}

// UnionWith adds every item of o to the collection. It returns c to
// permit chaining.
func (c *Coll[W, I, S]) UnionWith(o Coll[W, I, S]) *Coll[W, I, S] {
	c.bits |= o.bits
	return c
}

// IntersectWith drops every item not in o. It returns c to permit
// chaining.
func (c *Coll[W, I, S]) IntersectWith(o Coll[W, I, S]) *Coll[W, I, S] {
	c.bits &= o.bits
	return c
}

// DifferenceWith removes every item of o from the collection. It
// returns c to permit chaining.
func (c *Coll[W, I, S]) DifferenceWith(o Coll[W, I, S]) *Coll[W, I, S] {
	c.bits &^= o.bits
	return c
}

// SymmetricDifferenceWith flips the bit of every item of o. It returns
// c to permit chaining.
func (c *Coll[W, I, S]) SymmetricDifferenceWith(o Coll[W, I, S]) *Coll[W, I, S] {
	c.bits ^= o.bits
	return c
}

// InsertSeq adds every item yielded by seq to the collection. It
// returns c to permit chaining.
func (c *Coll[W, I, S]) InsertSeq(seq iter.Seq[I]) *Coll[W, I, S] {
	for x := range seq {
		c.Insert(x)
	}
	return c
}

func (c Coll[W, I, S]) String() string {
	return fmt.Sprintf("{%b}", uint64(c.bits))
}
