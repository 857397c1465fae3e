package scalar

import (
	"cmp"
	"encoding/json"
	"math"
	"strconv"
)

// Number is a numeric scalar normalised for ordering and contiguity checks.
// Integers are held exactly; everything else (floats, and uint64 values that
// do not fit into int64) is held as float64.
type Number struct {
	integer bool
	i       int64
	f       float64
}

// Int returns an integral Number.
func Int(i int64) Number {
	return Number{integer: true, i: i, f: float64(i)}
}

// Float returns a floating-point Number.
func Float(f float64) Number {
	return Number{f: f}
}

// NumberOf converts v to a Number. It reports false for non-numeric values
// and for NaN, which has no place in an ordering.
func NumberOf(v any) (Number, bool) {
	switch x := v.(type) {
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return fromUint64(uint64(x)), true
	case uint8:
		return Int(int64(x)), true
	case uint16:
		return Int(int64(x)), true
	case uint32:
		return Int(int64(x)), true
	case uint64:
		return fromUint64(x), true
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), true
		}
		f, err := x.Float64()
		if err != nil {
			return Number{}, false
		}
		return fromFloat(f)
	}

	return Number{}, false
}

func fromUint64(u uint64) Number {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}

	return Int(int64(u))
}

func fromFloat(f float64) (Number, bool) {
	if math.IsNaN(f) {
		return Number{}, false
	}

	return Float(f), true
}

// IsInteger reports whether the number came from an integer kind.
func (n Number) IsInteger() bool {
	return n.integer
}

// Int64 returns the integral value; it is only meaningful when IsInteger is true.
func (n Number) Int64() int64 {
	return n.i
}

// Float64 returns the value as float64.
func (n Number) Float64() float64 {
	return n.f
}

// Compare orders two numbers, exactly when both are integers.
func (n Number) Compare(other Number) int {
	if n.integer && other.integer {
		return cmp.Compare(n.i, other.i)
	}

	return cmp.Compare(n.f, other.f)
}

// Succeeds reports whether n is exactly prev+1 with both being integers.
func (n Number) Succeeds(prev Number) bool {
	if !n.integer || !prev.integer {
		return false
	}

	return prev.i < n.i && n.i-prev.i == 1
}

func (n Number) String() string {
	if n.integer {
		return strconv.FormatInt(n.i, 10)
	}

	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
