package bitcoll_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/bitcoll"
)

func TestIterDoubleEnded(t *testing.T) {
	it := bitcoll.Full[uint8, val4, val4Spec]().Iterate()
	qt.Assert(t, qt.Equals(it.Len(), 4))

	x, ok := it.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, vA))

	x, ok = it.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, vD))

	x, ok = it.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, vB))

	x, ok = it.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, vC))

	_, ok = it.Next()
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = it.NextBack()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestIterCollRoundTrip(t *testing.T) {
	c := bitcoll.Of[uint8, val4, val4Spec](vA, vC, vD)
	it := c.Iterate()

	// The wrapper owns a copy; before any draining, converting back
	// yields the same collection.
	qt.Assert(t, qt.Equals(it.Coll(), c))

	it.Next()
	qt.Assert(t, qt.Equals(it.Coll(), bitcoll.Of[uint8, val4, val4Spec](vC, vD)))
	qt.Assert(t, qt.Equals(it.Len(), 2))

	// Draining the wrapper leaves the source collection unchanged.
	qt.Assert(t, qt.Equals(c.Len(), 3))
}
