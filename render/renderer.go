package render

import (
	"strings"

	"littleeye/node"
	"littleeye/options"
)

const (
	// Connector prefixes every line below the root.
	Connector = "└─ "
	// Indent is the indentation of one level.
	Indent = "   "
)

// Renderer renders analysed trees as indented text.
type Renderer struct {
	colors *Colors
	mostly bool
}

// New creates a Renderer honouring the colour and wording features of opts.
func New(opts options.Options) *Renderer {
	r := &Renderer{
		colors: plainColors(),
		mostly: opts.Has(options.FeatureMostly),
	}
	if opts.Has(options.FeatureColor) {
		r.colors = NewColors()
	}

	return r
}

// Render returns the summary text of root, one line per row.
func (r *Renderer) Render(root *node.Node) string {
	return strings.Join(r.Lines(root), "\n")
}

// Lines returns the summary of root as separate lines.
func (r *Renderer) Lines(root *node.Node) []string {
	lines := []string{r.colors.Get(root.Category)(Headline(root))}
	return r.body(lines, root, 0)
}

func (r *Renderer) body(lines []string, n *node.Node, level int) []string {
	if n == nil || n.Truncated || len(n.Children) == 0 {
		return lines
	}

	switch n.Category {
	case node.CategoryMapping:
		if keys := n.Keys(); keys != nil {
			lines = append(lines, r.line(level, r.colors.Default, "keys: "+KeysDescription(n.Count, keys)))
		}
		return r.stream(lines, n, n.Values(), level, "values: ")
	case node.CategorySequence:
		return r.stream(lines, n, n.Elements(), level, "")
	default:
		return lines
	}
}

// stream renders the group line of a container's children followed by its
// representatives: one for a uniform stream, described by the group line
// itself, or each mixed representative on its own line.
func (r *Renderer) stream(lines []string, n *node.Node, s *node.Stream, level int, prefix string) []string {
	if s == nil {
		return lines
	}

	rep := n.Representative()
	text := prefix + StreamDescription(s, r.mostly)
	if s.Pattern.Kind != node.PatternMixed && rep != nil && rep.Truncated {
		text += maxDepthSuffix
	}

	paint := r.colors.Default
	if s.Pattern.Kind != node.PatternMixed && len(s.Kinds) > 0 {
		paint = r.colors.Get(s.Kinds[0].Key.Category)
	}
	lines = append(lines, r.line(level, paint, text))

	if s.Pattern.Kind != node.PatternMixed {
		return r.body(lines, rep, level+1)
	}

	separator := " "
	if n.Category == node.CategoryMapping {
		separator = ": "
	}

	for _, child := range n.Children {
		lines = append(lines, r.line(level+1, r.colors.Get(child.Category), child.Index+separator+Headline(child)))
		lines = r.body(lines, child, level+2)
	}

	return lines
}

func (r *Renderer) line(level int, paint func(...any) string, text string) string {
	return strings.Repeat(Indent, level) + r.colors.Connector(Connector) + paint(text)
}
