package node

import "littleeye/scalar"

// Attribute keys of Node.Extra.
const (
	AttrShape    = "shape"    // []int, numeric arrays
	AttrDType    = "dtype"    // string, numeric arrays
	AttrSize     = "size"     // int, numeric array element count
	AttrLength   = "length"   // int, rune count of string scalars
	AttrElements = "elements" // *Stream, sequence children
	AttrKeys     = "keys"     // *KeySummary, mapping keys
	AttrValues   = "values"   // *Stream, mapping values
)

// Attr is a single category-specific fact about a node.
type Attr struct {
	Key   string
	Value any
}

// Extra is an ordered set of attributes.
type Extra []Attr

// Get returns the value stored under key.
func (e Extra) Get(key string) (any, bool) {
	for _, a := range e {
		if a.Key == key {
			return a.Value, true
		}
	}

	return nil, false
}

// Node is the structured summary of one value at one recursion depth.
// Nodes are built once by the analyzer and never modified afterwards.
type Node struct {
	Category Category
	// Count is the true element count of a container, also when only some of
	// its children were analysed. It is meaningless unless HasCount is true.
	Count   int
	Pattern Pattern
	// Children holds the representative children: one for a homogeneous or
	// variable stream, up to the mixed cap for a mixed one.
	Children  []*Node
	Extra     Extra
	Depth     int
	Truncated bool

	// TypeName is the display name of the value's type.
	TypeName string
	// Scalar and Literal describe scalar values.
	Scalar  scalar.KindEnum
	Literal string
	// Index locates a representative inside its parent: "[3]" for sequence
	// elements, the key literal for mapping values.
	Index string
}

// HasCount reports whether Count carries an element count.
func (n *Node) HasCount() bool {
	return n.Category.IsContainer()
}

// Representative returns the first representative child, or nil.
func (n *Node) Representative() *Node {
	if len(n.Children) == 0 {
		return nil
	}

	return n.Children[0]
}

// Elements returns the children summary of a sequence.
func (n *Node) Elements() *Stream {
	s, _ := n.attr(AttrElements).(*Stream)
	return s
}

// Keys returns the key summary of a mapping.
func (n *Node) Keys() *KeySummary {
	k, _ := n.attr(AttrKeys).(*KeySummary)
	return k
}

// Values returns the value summary of a mapping.
func (n *Node) Values() *Stream {
	s, _ := n.attr(AttrValues).(*Stream)
	return s
}

// Stream returns the children summary whichever container the node is.
func (n *Node) Stream() *Stream {
	if n.Category == CategoryMapping {
		return n.Values()
	}

	return n.Elements()
}

// Shape returns the array shape of a numeric array node.
func (n *Node) Shape() []int {
	s, _ := n.attr(AttrShape).([]int)
	return s
}

// DType returns the element type of a numeric array node.
func (n *Node) DType() string {
	s, _ := n.attr(AttrDType).(string)
	return s
}

func (n *Node) attr(key string) any {
	v, _ := n.Extra.Get(key)
	return v
}
