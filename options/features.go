package options

type FeatureEnum int

const (
	FeatureCycleDetection FeatureEnum = 1 << iota // collapse a container revisited on its own path into a cyclic leaf
	FeatureKeyNames                               // record the leading keys of string-keyed mappings
	FeatureMostly                                 // describe streams with a single odd child as "mostly X with 1 Y"
	FeatureColor                                  // colour rendered summaries with ANSI escapes

	FeatureAll  = (1 << iota) - 1 // all features combined
	FeatureNone = 0               // no features selected

	FeatureDefault = FeatureCycleDetection | FeatureKeyNames | FeatureMostly
)

// Has reports whether every feature in f is enabled.
func (e FeatureEnum) Has(f FeatureEnum) bool {
	return e&f == f
}
