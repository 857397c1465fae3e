package options

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littleeye/ndarray"
	"littleeye/node"
)

func TestDefault(t *testing.T) {
	o := Default()

	assert.Equal(t, 3, o.MaxDepth)
	assert.Equal(t, 3, o.MixedCap)
	assert.True(t, o.Has(FeatureCycleDetection))
	assert.True(t, o.Has(FeatureKeyNames|FeatureMostly))
	assert.False(t, o.Has(FeatureColor))
	require.Len(t, o.Adapters, 1)
	assert.NotNil(t, o.Logger)

	assert.Equal(t, node.CategoryNumericArray, node.Classify(ndarray.Vector(1.0), o.Adapters...))
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	o := New(
		WithMaxDepth(5),
		WithMixedCap(1),
		Enable(FeatureColor),
		Disable(FeatureMostly),
		WithLogger(logger),
	)

	assert.Equal(t, 5, o.MaxDepth)
	assert.Equal(t, 1, o.MixedCap)
	assert.True(t, o.Has(FeatureColor))
	assert.False(t, o.Has(FeatureMostly))
	assert.True(t, o.Has(FeatureCycleDetection))
	assert.Same(t, logger, o.Logger)
}

func TestNew_Normalizes(t *testing.T) {
	o := New(WithMaxDepth(-2), WithMixedCap(0), WithLogger(nil))

	assert.Zero(t, o.MaxDepth)
	assert.Equal(t, 1, o.MixedCap)
	assert.NotNil(t, o.Logger)
}

func TestWithAdapters(t *testing.T) {
	o := New(WithAdapters())
	assert.Empty(t, o.Adapters)
	assert.Equal(t, node.CategoryOpaque, node.Classify(ndarray.Vector(1.0), o.Adapters...))
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, FeatureEnum(15), FeatureEnum(FeatureAll))
	assert.True(t, FeatureEnum(FeatureAll).Has(FeatureDefault))
	assert.False(t, FeatureEnum(FeatureNone).Has(FeatureColor))
	assert.True(t, FeatureEnum(FeatureNone).Has(FeatureNone))

	o := New(WithFeatures(FeatureNone))
	assert.False(t, o.Has(FeatureCycleDetection))
}
