package node

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category is the closed structural classification of a value.
type Category int

const (
	CategoryOpaque Category = iota // anything without a recognised shape
	CategoryScalar                 // numbers, text, booleans, nil
	CategorySequence
	CategoryMapping
	CategoryNumericArray
	CategoryCyclic // a container revisited on its own recursion path

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// IsContainer reports whether values of the category hold countable elements.
func (c Category) IsContainer() bool {
	switch c {
	default:
		return false
	case CategorySequence, CategoryMapping, CategoryNumericArray:
		return true
	}
}
