package ndarray

import "littleeye/node"

// Adapter returns the array adapter recognising every Array implementation.
func Adapter() node.ArrayAdapter {
	return node.ArrayAdapterFunc(inspect)
}

func inspect(v any) (node.ArrayInfo, bool) {
	a, ok := v.(Array)
	if !ok || a == nil {
		return node.ArrayInfo{}, false
	}

	return node.ArrayInfo{Shape: a.Shape(), DType: a.DType()}, true
}
