package scalar_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"littleeye/scalar"
)

func Example() {
	type Celsius float64

	fmt.Println(scalar.FromValue(42))
	fmt.Println(scalar.FromValue("hello"))
	fmt.Println(scalar.FromValue(nil))
	fmt.Println(scalar.FromValue(json.Number("1.5")))
	fmt.Println(scalar.FromValue(time.Second))
	fmt.Println(scalar.FromValue(Celsius(21.5)))
	fmt.Println(scalar.FromValue([]int{1}))
	// Output:
	// KindInt
	// KindString
	// KindNil
	// KindFloat64
	// KindDuration
	// KindEnum(0)
	// KindEnum(0)
}

func TestKindEnum_Classes(t *testing.T) {
	for k := scalar.KindNil; int(k) < scalar.KindTotal; k++ {
		assert.False(t, k.IsInteger() && k.IsFloat(), k.String())
		assert.NotEqual(t, "unknown", k.Name(), k.String())
	}

	assert.False(t, scalar.KindString.IsInteger())
	assert.False(t, scalar.KindComplex128.IsFloat())
	assert.True(t, scalar.KindUint64.IsInteger())
	assert.True(t, scalar.KindFloat32.IsFloat())
}

func TestKindEnum_Name(t *testing.T) {
	assert.Equal(t, "int", scalar.KindInt.Name())
	assert.Equal(t, "string", scalar.KindString.Name())
	assert.Equal(t, "nil", scalar.KindNil.Name())
	assert.Equal(t, "time.Time", scalar.KindTime.Name())
	assert.Equal(t, "unknown", scalar.KindEnum(0).Name())
}

func TestFromValue_JSONNumber(t *testing.T) {
	assert.Equal(t, scalar.KindInt64, scalar.FromValue(json.Number("12")))
	assert.Equal(t, scalar.KindFloat64, scalar.FromValue(json.Number("1e3")))
}
