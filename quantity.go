package bitcoll

// Quantity classifies a collection by how many items it holds. The
// three-way split is what consumers usually branch on: nothing to do,
// a unique candidate, or ties to break.
type Quantity int

const (
	// None means the collection is empty.
	None Quantity = iota
	// Single means the collection holds exactly one item.
	Single
	// Multiple means the collection holds at least two items.
	Multiple
)

func (q Quantity) String() string {
	switch q {
	case None:
		return "none"
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	}
	return "invalid"
}

// Quantity classifies the collection without a full population count.
func (c Coll[W, I, S]) Quantity() Quantity {
	switch {
	case c.IsEmpty():
		return None
	case c.HasMultiple():
		return Multiple
	}
	return Single
}
