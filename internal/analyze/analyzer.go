package analyze

import (
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"littleeye/diagnostic"
	"littleeye/internal/common"
	"littleeye/internal/detect"
	"littleeye/node"
	"littleeye/options"
	"littleeye/scalar"
)

// maxKeyNames bounds the leading keys recorded for string-keyed mappings.
const maxKeyNames = 5

// unreadableTypeName names children whose capability methods failed.
const unreadableTypeName = "<unreadable>"

type identity struct {
	category node.Category
	id       node.Identity
}

// Analyzer runs one structural analysis. It is not safe for concurrent use;
// create one per analysed value.
type Analyzer struct {
	opts   options.Options
	onPath map[identity]struct{} // containers on the current recursion path
	diags  diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts options.Options) *Analyzer {
	return &Analyzer{
		opts:   opts,
		onPath: make(map[identity]struct{}),
	}
}

// Analyze summarises v, starting at depth 0.
func (a *Analyzer) Analyze(v any) *node.Node {
	return a.analyze(node.Inspect(v, a.opts.Adapters...), 0, "", NewPath("$"))
}

// Diagnostics returns what the analysis noticed along the way.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

func (a *Analyzer) analyze(val node.Value, depth int, index string, path *Path) *node.Node {
	n := &node.Node{
		Category: val.Category,
		Depth:    depth,
		TypeName: val.TypeName,
		Index:    index,
	}

	switch val.Category {
	case node.CategoryScalar:
		n.Scalar = val.Scalar
		n.Literal = scalar.Literal(val.Raw)
		if s, ok := val.Raw.(string); ok {
			n.Extra = node.Extra{{Key: node.AttrLength, Value: utf8.RuneCountInString(s)}}
		}

	case node.CategoryNumericArray:
		n.Count = val.Count
		n.Truncated = depth >= a.opts.MaxDepth
		n.Extra = node.Extra{
			{Key: node.AttrShape, Value: slices.Clone(val.Array.Shape)},
			{Key: node.AttrDType, Value: val.Array.DType},
			{Key: node.AttrSize, Value: val.Count},
		}

	case node.CategoryCyclic:
		a.diags.AddInfo(diagnostic.CodeCyclicRef, fmt.Sprintf("%s refers back to an enclosing container", val.TypeName), path.String())
		a.opts.Logger.Debug("cyclic reference", "path", path.String(), "type", val.TypeName)

	case node.CategorySequence, node.CategoryMapping:
		return a.container(n, val, path)
	}

	return n
}

// container fills in a sequence or mapping node. Statistics are computed over
// every child; only representatives are analysed recursively.
func (a *Analyzer) container(n *node.Node, val node.Value, path *Path) *node.Node {
	n.Count = val.Count
	if n.Depth >= a.opts.MaxDepth {
		n.Truncated = true
		return n
	}

	if n.Count == 0 {
		n.Pattern = node.Empty()
		return n
	}

	if a.opts.Has(options.FeatureCycleDetection) {
		if key := (identity{category: val.Category, id: a.identity(val, path)}); !key.id.IsZero() {
			a.onPath[key] = struct{}{}
			defer delete(a.onPath, key)
		}
	}

	if val.Category == node.CategoryMapping {
		return a.mapping(n, val.Map, path)
	}

	return a.sequence(n, val.Seq, path)
}

func (a *Analyzer) sequence(n *node.Node, seq node.Sequence, path *Path) *node.Node {
	values := make([]node.Value, n.Count)
	for i := range values {
		values[i] = a.revisit(a.element(seq, i, path), path.Index(i))
	}

	label := func(i int) string { return "[" + strconv.Itoa(i) + "]" }
	stream := a.summarize(values)
	n.Pattern = stream.Pattern
	n.Children = a.represent(values, stream, n.Depth+1, label, path.Index)
	n.Extra = node.Extra{{Key: node.AttrElements, Value: &stream}}

	return n
}

func (a *Analyzer) mapping(n *node.Node, m node.Mapping, path *Path) *node.Node {
	entries, ok := a.entries(m, path)
	if !ok || common.IsEmpty(entries) {
		return n
	}

	keys := make([]any, len(entries))
	keyValues := make([]node.Value, len(entries))
	values := make([]node.Value, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		keyValues[i] = node.Inspect(e.Key, a.opts.Adapters...)
		labels[i] = keyLabel(e.Key)
		values[i] = a.revisit(node.Inspect(e.Value, a.opts.Adapters...), path.Key(labels[i]))
	}

	summary := &node.KeySummary{
		Sequence: detect.KeySequence(keys),
		Stream:   a.summarize(keyValues),
	}
	if a.opts.Has(options.FeatureKeyNames) && isStringStream(summary.Stream) {
		for _, k := range common.Take(keys, maxKeyNames) {
			summary.Names = append(summary.Names, k.(string))
		}
	}

	stream := a.summarize(values)
	n.Pattern = stream.Pattern
	n.Children = a.represent(values, stream, n.Depth+1,
		func(i int) string { return labels[i] },
		func(i int) *Path { return path.Key(labels[i]) })
	n.Extra = node.Extra{
		{Key: node.AttrKeys, Value: summary},
		{Key: node.AttrValues, Value: &stream},
	}

	return n
}

// summarize runs the detectors over a full, non-empty stream of children.
func (a *Analyzer) summarize(values []node.Value) node.Stream {
	keys := make([]node.KindKey, len(values))
	for i, v := range values {
		keys[i] = v.Key()
	}

	verdict := detect.Homogeneity(keys, a.opts.MixedCap)
	stream := node.Stream{Kinds: verdict.Counts}
	for _, rep := range verdict.Representatives {
		stream.Representatives = append(stream.Representatives, rep.Index)
	}

	if verdict.Pattern == node.PatternMixed {
		stream.Pattern = node.Mixed()
		return stream
	}

	kind := verdict.Key()
	stream.Pattern = node.Homogeneous(kind.Label())

	switch kind.Category {
	case node.CategoryNumericArray:
		shapes := make([][]int, len(values))
		dtypes := make([]string, len(values))
		for i, v := range values {
			shapes[i] = v.Array.Shape
			dtypes[i] = v.Array.DType
		}

		shapeVerdict := detect.Shapes(shapes)
		stream.Shapes = &shapeVerdict
		if common.AllEqual(dtypes, func(x, y string) bool { return x == y }) {
			stream.DType = dtypes[0]
		}

	case node.CategorySequence, node.CategoryMapping:
		sizes := make([]int, len(values))
		for i, v := range values {
			sizes[i] = v.Count
		}

		sizeVerdict := detect.Sizes(sizes)
		stream.Sizes = &sizeVerdict
		if !sizeVerdict.Identical {
			stream.Pattern = node.Variable(fmt.Sprintf("%s of size %d..%d", kind.Label(), sizeVerdict.Min, sizeVerdict.Max))
		}
	}

	return stream
}

// represent analyses the representative children of a stream.
func (a *Analyzer) represent(values []node.Value, stream node.Stream, depth int, label func(int) string, pathOf func(int) *Path) []*node.Node {
	reps := make([]*node.Node, 0, len(stream.Representatives))
	for _, i := range stream.Representatives {
		reps = append(reps, a.analyze(values[i], depth, label(i), pathOf(i)))
	}

	return reps
}

// element reads the i-th element of seq, degrading it when the read panics.
func (a *Analyzer) element(seq node.Sequence, i int, path *Path) (val node.Value) {
	defer func() {
		if r := recover(); r != nil {
			a.degrade(path.Index(i), r)
			val = unreadable()
		}
	}()

	return node.Inspect(seq.At(i), a.opts.Adapters...)
}

// entries lists the key/value pairs of m in iteration order.
func (a *Analyzer) entries(m node.Mapping, path *Path) (entries []node.Entry, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			at := path.Field("keys").String()
			a.diags.AddWarning(diagnostic.CodeUnreadableKeys, fmt.Sprint(r), at)
			a.opts.Logger.Debug("mapping keys unreadable", "path", at, "panic", r)
			entries, ok = nil, false
		}
	}()

	if lister, isLister := m.(node.EntryLister); isLister {
		return lister.Entries(), true
	}

	keys := m.Keys()
	entries = make([]node.Entry, len(keys))
	for i, k := range keys {
		entries[i] = node.Entry{Key: k, Value: a.lookup(m, k, path)}
	}

	return entries, true
}

// degradedValue marks a mapping value whose lookup failed.
type degradedValue struct{}

func (degradedValue) TypeName() string { return unreadableTypeName }

func (a *Analyzer) lookup(m node.Mapping, key any, path *Path) (v any) {
	defer func() {
		if r := recover(); r != nil {
			a.degrade(path.Key(keyLabel(key)), r)
			v = degradedValue{}
		}
	}()

	v, ok := m.Lookup(key)
	if !ok {
		a.degrade(path.Key(keyLabel(key)), "key listed but not found")
		return degradedValue{}
	}

	return v
}

// revisit turns a container that is already on the current recursion path
// into a cyclic value, so it is neither expanded nor counted as a container.
func (a *Analyzer) revisit(val node.Value, path *Path) node.Value {
	if !a.opts.Has(options.FeatureCycleDetection) {
		return val
	}
	if val.Category != node.CategorySequence && val.Category != node.CategoryMapping {
		return val
	}

	key := identity{category: val.Category, id: a.identity(val, path)}
	if key.id.IsZero() {
		return val
	}
	if _, seen := a.onPath[key]; !seen {
		return val
	}

	val.Category = node.CategoryCyclic
	return val
}

func (a *Analyzer) identity(val node.Value, path *Path) (id node.Identity) {
	defer func() {
		if r := recover(); r != nil {
			a.degrade(path, r)
			id = node.Identity{}
		}
	}()

	return val.Identity()
}

func (a *Analyzer) degrade(path *Path, cause any) {
	a.diags.AddWarning(diagnostic.CodeDegradedChild, fmt.Sprint(cause), path.String())
	a.opts.Logger.Debug("child degraded to opaque", "path", path.String(), "panic", cause)
}

func unreadable() node.Value {
	return node.Value{Category: node.CategoryOpaque, TypeName: unreadableTypeName}
}

func isStringStream(s node.Stream) bool {
	return s.Pattern.Kind == node.PatternHomogeneous &&
		s.Kinds[0].Key.Category == node.CategoryScalar &&
		s.Kinds[0].Key.Scalar == scalar.KindString
}

// keyLabel renders a mapping key the way it is shown next to its value.
func keyLabel(k any) string {
	if kind := scalar.FromValue(k); kind != 0 {
		if lit := scalar.Literal(k); lit != "" {
			return lit
		}
		if s, ok := k.(string); ok {
			return fmt.Sprintf("'%s...'", string([]rune(s)[:scalar.LongStringThreshold]))
		}
	}

	return node.TypeNameOf(k)
}
