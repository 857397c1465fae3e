package render

import (
	"fmt"

	"github.com/fatih/color"

	"littleeye/node"
)

// Colors maps categories onto colouring functions.
type Colors struct {
	Default   func(...any) string
	Connector func(...any) string
	Map       map[node.Category]func(...any) string
}

// NewColors returns the palette used for terminal output. Colours are forced
// on; the caller decides whether to colour at all.
func NewColors() *Colors {
	colors := &Colors{
		Default:   colorDefault,
		Connector: sprint(color.FgHiBlack),
		Map:       map[node.Category]func(...any) string{},
	}

	colors.Map[node.CategoryScalar] = sprint(color.FgGreen)
	colors.Map[node.CategorySequence] = sprint(color.FgCyan, color.Bold)
	colors.Map[node.CategoryMapping] = sprint(color.FgBlue, color.Bold)
	colors.Map[node.CategoryNumericArray] = sprint(color.FgMagenta)
	colors.Map[node.CategoryOpaque] = sprint(color.FgYellow)
	colors.Map[node.CategoryCyclic] = sprint(color.FgRed)

	return colors
}

// plainColors leaves every string untouched.
func plainColors() *Colors {
	return &Colors{
		Default:   colorDefault,
		Connector: colorDefault,
		Map:       map[node.Category]func(...any) string{},
	}
}

func sprint(attrs ...color.Attribute) func(...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func colorDefault(a ...any) string {
	if len(a) == 1 {
		if s, ok := a[0].(string); ok {
			return s
		}
	}

	return fmt.Sprint(a...)
}

// Get returns the colouring function of a category.
func (c *Colors) Get(cat node.Category) func(...any) string {
	f := c.Map[cat]
	if f == nil {
		return c.Default
	}

	return f
}
