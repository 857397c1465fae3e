package options

import (
	"log/slog"

	"littleeye/ndarray"
	"littleeye/node"
)

const (
	DefaultMaxDepth = 3
	DefaultMixedCap = 3
)

// Options configures analysis and rendering.
type Options struct {
	// MaxDepth bounds the recursion; nodes at this depth are truncated.
	MaxDepth int
	// MixedCap bounds the representatives kept for a mixed stream.
	MixedCap int
	Features FeatureEnum
	// Adapters recognise numeric arrays, tried in order.
	Adapters []node.ArrayAdapter
	Logger   *slog.Logger
}

type Option func(*Options)

// Default returns the default options: depth 3, three mixed representatives,
// the default features and the ndarray adapter.
func Default() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		MixedCap: DefaultMixedCap,
		Features: FeatureDefault,
		Adapters: []node.ArrayAdapter{ndarray.Adapter()},
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// New applies opts on top of Default and normalises the result.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}

	return o.normalize()
}

func (o Options) normalize() Options {
	o.MaxDepth = max(o.MaxDepth, 0)
	o.MixedCap = max(o.MixedCap, 1)
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// Has reports whether the feature is enabled.
func (o Options) Has(f FeatureEnum) bool {
	return o.Features.Has(f)
}

func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

func WithMixedCap(limit int) Option {
	return func(o *Options) { o.MixedCap = limit }
}

// WithFeatures replaces the feature set.
func WithFeatures(features FeatureEnum) Option {
	return func(o *Options) { o.Features = features }
}

func Enable(features FeatureEnum) Option {
	return func(o *Options) { o.Features |= features }
}

func Disable(features FeatureEnum) Option {
	return func(o *Options) { o.Features &^= features }
}

// WithAdapters replaces the array adapters. Without adapters no value is
// classified as a numeric array.
func WithAdapters(adapters ...node.ArrayAdapter) Option {
	return func(o *Options) { o.Adapters = adapters }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
