package node

//go:generate go tool stringer -type=PatternKind -trimprefix=Pattern -output=pattern_string.go

// PatternKind is the regularity verdict across a container's children.
type PatternKind int

const (
	PatternNone        PatternKind = iota // scalars, opaque values and truncated containers
	PatternEmpty                          // container without children
	PatternHomogeneous                    // every child has the same kind
	PatternVariable                       // same kind, differing sizes
	PatternMixed                          // several kinds
)

// Pattern is a PatternKind with its description, e.g. Homogeneous("int").
type Pattern struct {
	Kind        PatternKind
	Description string
}

func Homogeneous(description string) Pattern {
	return Pattern{Kind: PatternHomogeneous, Description: description}
}

func Variable(description string) Pattern {
	return Pattern{Kind: PatternVariable, Description: description}
}

func Mixed() Pattern {
	return Pattern{Kind: PatternMixed}
}

func Empty() Pattern {
	return Pattern{Kind: PatternEmpty}
}

func (p Pattern) String() string {
	if p.Description == "" {
		return p.Kind.String()
	}

	return p.Kind.String() + "(" + p.Description + ")"
}
