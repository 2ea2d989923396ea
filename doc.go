// Package bitcoll treats a single fixed-width unsigned integer as a
// typed collection of items, one item per set bit.
//
// The pattern turns up whenever a small closed domain is packed into an
// integer: occupancy masks on a chess board, permission flags, small
// enumerated-state sets. Rather than re-implementing the membership,
// extraction and iteration boilerplate for every such type, a collection
// type is described once by a Spec - the item type, the mask of valid
// bits, and how an item maps to its bit position - and Coll derives the
// whole operation surface from that.
//
// A collection is a plain value wrapping one backing word of 8, 16, 32
// or 64 bits. The zero value is the empty collection. All operations
// are constant time, built from native popcount, trailing-zero and
// leading-zero instructions, and none of them allocate.
//
// The mask is a trusted input: every bit it covers must correspond to a
// constructible item. Paths that can introduce out-of-mask bits (raw
// word conversion, complement) scrub them; nothing verifies that the
// mask itself matches the item domain. UncheckedLSB and UncheckedMSB
// additionally require a non-empty receiver; use LSB and MSB unless
// emptiness has already been ruled out.
//
// For the common case of declaring a named collection type, the
// bitcollgen command generates the Spec and surrounding boilerplate
// from a one-line description. See the bitcollgen package.
package bitcoll
