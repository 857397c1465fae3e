package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"littleeye/internal/analyze"
	"littleeye/ndarray"
	"littleeye/node"
	"littleeye/options"
	"littleeye/render"
)

func summary(v any, opts ...options.Option) string {
	o := options.New(opts...)
	return render.New(o).Render(analyze.NewAnalyzer(o).Analyze(v))
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func TestRender(t *testing.T) {
	ordered := node.NewOrderedMap(7)
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		ordered.Set(k, 1)
	}

	loop := []any{nil}
	loop[0] = loop

	tests := []struct {
		name string
		in   any
		opts []options.Option
		want string
	}{
		{
			name: "int",
			in:   5,
			want: "int: 5",
		},
		{
			name: "string",
			in:   "x",
			want: "string: 'x'",
		},
		{
			name: "long string",
			in:   strings.Repeat("y", 200),
			want: "string of length 200",
		},
		{
			name: "nil",
			in:   nil,
			want: "nil",
		},
		{
			name: "empty list",
			in:   []any{},
			want: "empty list",
		},
		{
			name: "empty dict",
			in:   map[string]any{},
			want: "empty dict",
		},
		{
			name: "max depth zero",
			in:   []any{1},
			opts: []options.Option{options.WithMaxDepth(0)},
			want: "list with 1 element (max depth reached)",
		},
		{
			name: "truncated representative",
			in:   []any{[]any{[]any{1}}},
			opts: []options.Option{options.WithMaxDepth(1)},
			want: lines(
				"list with 1 element",
				"└─ lists of size 1 each (max depth reached)",
			),
		},
		{
			name: "matrix",
			in:   []any{[]any{1, 2, 3, 4}, []any{5, 6, 7, 8}, []any{9, 10, 11, 12}},
			want: lines(
				"list with 3 elements",
				"└─ lists of size 4 each",
				"   └─ int objects",
			),
		},
		{
			name: "variable size",
			in:   []any{[]any{1, 2}, []any{1, 2, 3, 4, 5}},
			want: lines(
				"list with 2 elements",
				"└─ lists of variable size, from 2 to 5",
				"   └─ int objects",
			),
		},
		{
			name: "mixed",
			in:   []any{1, 2, 3, "hello", []any{1, 2, 3}},
			want: lines(
				"list with 5 elements",
				"└─ mixed types: 3 int, 1 string, 1 list",
				"   └─ [0] int: 1",
				"   └─ [3] string: 'hello'",
				"   └─ [4] list with 3 elements",
				"      └─ int objects",
			),
		},
		{
			name: "mostly",
			in:   []any{[]any{1}, []any{2}, "x"},
			want: lines(
				"list with 3 elements",
				"└─ mostly lists with 1 string",
				"   └─ [0] list with 1 element",
				"      └─ int objects",
				"   └─ [2] string: 'x'",
			),
		},
		{
			name: "mostly disabled",
			in:   []any{[]any{1}, []any{2}, "x"},
			opts: []options.Option{options.Disable(options.FeatureMostly)},
			want: lines(
				"list with 3 elements",
				"└─ mixed types: 2 list, 1 string",
				"   └─ [0] list with 1 element",
				"      └─ int objects",
				"   └─ [2] string: 'x'",
			),
		},
		{
			name: "empty containers",
			in: map[string]any{
				"empty_list": []any{},
				"empty_dict": map[string]any{},
				"numbers":    []any{1, 2, 3},
			},
			want: lines(
				"dict with 3 elements",
				"└─ keys: string keys: 'empty_dict', 'empty_list', 'numbers'",
				"└─ values: mixed types: 1 empty dict, 1 empty list, 1 list",
				"   └─ 'empty_dict': empty dict",
				"   └─ 'empty_list': empty list",
				"   └─ 'numbers': list with 3 elements",
				"      └─ int objects",
			),
		},
		{
			name: "empty lists",
			in:   []any{[]any{}, []int{}},
			want: lines(
				"list with 2 elements",
				"└─ empty lists",
			),
		},
		{
			name: "mostly empty lists",
			in:   []any{[]any{}, []any{}, []any{}, []any{1}},
			want: lines(
				"list with 4 elements",
				"└─ mostly empty lists with 1 list",
				"   └─ [0] empty list",
				"   └─ [3] list with 1 element",
				"      └─ int objects",
			),
		},
		{
			name: "nested typed slices",
			in:   [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}},
			want: lines(
				"list with 3 elements",
				"└─ lists of size 4 each",
				"   └─ int objects",
			),
		},
		{
			name: "typed records",
			in:   []map[string]string{{"a": "x"}, {"a": "y"}},
			want: lines(
				"list with 2 elements",
				"└─ dicts of size 1 each",
				"   └─ keys: string keys: 'a'",
				"   └─ values: string objects",
			),
		},
		{
			name: "typed columns",
			in:   map[string][]int{"a": {1, 2}, "b": {3, 4}},
			want: lines(
				"dict with 2 elements",
				"└─ keys: string keys: 'a', 'b'",
				"└─ values: lists of size 2 each",
				"   └─ int objects",
			),
		},
		{
			name: "nan key",
			in:   map[any]any{math.NaN(): 1, "a": 2},
			want: lines(
				"dict with 2 elements",
				"└─ keys: mixed key types",
				"└─ values: int objects",
			),
		},
		{
			name: "many string keys",
			in:   ordered,
			want: lines(
				"dict with 7 elements",
				"└─ keys: string keys (showing first 3): 'a', 'b', 'c', ...",
				"└─ values: int objects",
			),
		},
		{
			name: "single integer key",
			in:   map[int]any{5: "x"},
			want: lines(
				"dict with 1 element",
				"└─ keys: single integer key 5",
				"└─ values: string objects",
			),
		},
		{
			name: "single float key",
			in:   map[any]any{1.5: "x"},
			want: lines(
				"dict with 1 element",
				"└─ keys: single float key 1.5",
				"└─ values: string objects",
			),
		},
		{
			name: "integer range",
			in:   map[int]string{1: "a", 9: "b"},
			want: lines(
				"dict with 2 elements",
				"└─ keys: integer range 1 to 9",
				"└─ values: string objects",
			),
		},
		{
			name: "numeric range",
			in:   map[any]any{0.5: 1, 1.5: 2},
			want: lines(
				"dict with 2 elements",
				"└─ keys: numeric range 0.5 to 1.5",
				"└─ values: int objects",
			),
		},
		{
			name: "mixed keys",
			in:   map[any]any{1: "a", "b": "c"},
			want: lines(
				"dict with 2 elements",
				"└─ keys: mixed key types",
				"└─ values: string objects",
			),
		},
		{
			name: "array",
			in:   ndarray.Zeros[float64](128, 64),
			want: "array of shape (128x64) dtype float64",
		},
		{
			name: "identical arrays",
			in:   []any{ndarray.Zeros[float64](2, 2), ndarray.Zeros[float64](2, 2)},
			want: lines(
				"list with 2 elements",
				"└─ arrays of shape (2x2) each dtype float64",
			),
		},
		{
			name: "variable arrays",
			in:   []any{ndarray.Zeros[float64](2, 3), ndarray.Zeros[float64](4, 1)},
			want: lines(
				"list with 2 elements",
				"└─ arrays of variable shapes, from (2x3) to (4x1) dtype float64",
			),
		},
		{
			name: "arrays of several dtypes",
			in:   []any{ndarray.Vector[int64](1, 2), ndarray.Vector[float32](1, 2)},
			want: lines(
				"list with 2 elements",
				"└─ arrays of shape (2,) each",
			),
		},
		{
			name: "cycle",
			in:   loop,
			want: lines(
				"list with 1 element",
				"└─ cyclic references",
			),
		},
		{
			name: "tuple",
			in:   node.Tuple{"a", "b"},
			want: lines(
				"tuple with 2 elements",
				"└─ string objects",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summary(tt.in, tt.opts...))
		})
	}
}

func TestRender_SequentialKeysWithArrays(t *testing.T) {
	m := make(map[int]any)
	for k := 23; k <= 43; k++ {
		size := 3 + (k-23)*6
		if k == 43 {
			size = 128
		}
		m[k] = ndarray.Vector(make([]float64, size)...)
	}

	want := lines(
		"dict with 21 elements",
		"└─ keys: sequential range 23 to 43",
		"└─ values: arrays of variable shape 1-d, from (3,) to (128,) dtype float64",
	)
	assert.Equal(t, want, summary(m))
}

func TestRender_Deterministic(t *testing.T) {
	value := map[any]any{
		"b":   []any{1, "x", nil},
		"a":   map[string]any{"k": []any{1.5}},
		3:     true,
		false: node.Tuple{},
	}

	o := options.New()
	r := render.New(o)
	first := r.Lines(analyze.NewAnalyzer(o).Analyze(value))
	second := r.Lines(analyze.NewAnalyzer(o).Analyze(value))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rendering is not deterministic (-first +second):\n%s", diff)
	}
}

func TestRender_Color(t *testing.T) {
	value := []any{1, []any{2}}

	plain := summary(value)
	colored := summary(value, options.Enable(options.FeatureColor))

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "mixed types")
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "cyclic reference to dict", render.Headline(&node.Node{Category: node.CategoryCyclic, TypeName: "dict"}))
	assert.Equal(t, "main.point object", render.Headline(&node.Node{Category: node.CategoryOpaque, TypeName: "main.point"}))
	assert.Equal(t, "list with 4 elements (max depth reached)",
		render.Headline(&node.Node{Category: node.CategorySequence, TypeName: "list", Count: 4, Truncated: true}))
}

func TestDump(t *testing.T) {
	o := options.New()
	dump := render.Dump(analyze.NewAnalyzer(o).Analyze([]any{1, 2, 3}))

	assert.Contains(t, dump, "Count: (int) 3")
	assert.Contains(t, dump, "Literal: (string) (len=1) \"1\"")
}
