package analyze

import (
	"strconv"
	"strings"
)

// Path builds a readable location string for a value.
// Examples:
//   - "$" for the root
//   - "$[3]" for the fourth element of a sequence
//   - "$['users'][0]" for the first element stored under key 'users'
//   - "$.keys[2]" for the third key of a mapping
type Path struct {
	parts []string
}

// NewPath creates a new Path from a root name.
func NewPath(root string) *Path {
	return &Path{parts: []string{root}}
}

// Index appends a sequence position to the path.
func (p *Path) Index(i int) *Path {
	return p.with("[" + strconv.Itoa(i) + "]")
}

// Key appends a mapping key, given as its literal, to the path.
func (p *Path) Key(literal string) *Path {
	return p.with("[" + literal + "]")
}

// Field appends a named member such as "keys" to the path.
func (p *Path) Field(name string) *Path {
	return p.with("." + name)
}

func (p *Path) with(part string) *Path {
	return &Path{parts: append(append([]string{}, p.parts...), part)}
}

// String returns the full path string.
func (p *Path) String() string {
	return strings.Join(p.parts, "")
}
