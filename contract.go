package bitcoll

import "iter"

// Collection is the behavioural contract satisfied by every collection
// type. It is expressed with a self-referential type parameter so that
// the pure combinators can return the concrete type; *Coll satisfies
// Collection[Coll[...], I] for any instantiation.
//
// The contract exists for code that abstracts over collection types,
// for example test helpers exercising several backing widths. Ordinary
// callers use Coll (or a generated alias of it) directly.
type Collection[C any, I any] interface {
	Len() int
	IsEmpty() bool
	HasMultiple() bool
	Quantity() Quantity

	Contains(I) bool
	ContainsAll(C) bool

	LSB() (I, bool)
	MSB() (I, bool)
	UncheckedLSB() I
	UncheckedMSB() I
	RemoveLSB()
	RemoveMSB()
	PopLSB() (I, bool)
	PopMSB() (I, bool)

	Inserting(I) C
	Removing(I) C
	Toggling(I) C
	Intersecting(I) C
	Setting(I, bool) C

	Insert(I) *C
	Remove(I) *C
	Toggle(I) *C
	Intersect(I) *C
	Set(I, bool) *C

	All() iter.Seq[I]
	Backward() iter.Seq[I]
}
