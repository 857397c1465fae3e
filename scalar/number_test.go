package scalar_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littleeye/scalar"
)

func TestNumberOf(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		ok      bool
		integer bool
		text    string
	}{
		{"int", 7, true, true, "7"},
		{"int8", int8(-3), true, true, "-3"},
		{"uint32", uint32(9), true, true, "9"},
		{"uint64 fits", uint64(10), true, true, "10"},
		{"uint64 overflow", uint64(math.MaxUint64), true, false, "1.8446744073709552e+19"},
		{"float64", 2.5, true, false, "2.5"},
		{"float32", float32(0.5), true, false, "0.5"},
		{"json integer", json.Number("23"), true, true, "23"},
		{"json float", json.Number("2.25"), true, false, "2.25"},
		{"NaN", math.NaN(), false, false, ""},
		{"string", "1", false, false, ""},
		{"bool", true, false, false, ""},
		{"nil", nil, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := scalar.NumberOf(tt.in)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.integer, n.IsInteger())
			assert.Equal(t, tt.text, n.String())
		})
	}
}

func TestNumber_Compare(t *testing.T) {
	assert.Equal(t, -1, scalar.Int(1).Compare(scalar.Int(2)))
	assert.Equal(t, 0, scalar.Int(2).Compare(scalar.Float(2)))
	assert.Equal(t, 1, scalar.Float(2.5).Compare(scalar.Int(2)))

	// exact for integers beyond float64 precision
	big := int64(1) << 60
	assert.Equal(t, 1, scalar.Int(big+1).Compare(scalar.Int(big)))
}

func TestNumber_Succeeds(t *testing.T) {
	assert.True(t, scalar.Int(24).Succeeds(scalar.Int(23)))
	assert.False(t, scalar.Int(25).Succeeds(scalar.Int(23)))
	assert.False(t, scalar.Int(23).Succeeds(scalar.Int(23)))
	assert.False(t, scalar.Int(22).Succeeds(scalar.Int(23)))
	assert.False(t, scalar.Float(2).Succeeds(scalar.Float(1)))
	assert.False(t, scalar.Int(math.MinInt64).Succeeds(scalar.Int(math.MaxInt64)))
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "nil", scalar.Literal(nil))
	assert.Equal(t, "'hello'", scalar.Literal("hello"))
	assert.Equal(t, "5", scalar.Literal(5))
	assert.Equal(t, "0.1", scalar.Literal(0.1))
	assert.Equal(t, "true", scalar.Literal(true))

	long := make([]rune, scalar.LongStringThreshold+1)
	for i := range long {
		long[i] = 'é'
	}
	assert.Empty(t, scalar.Literal(string(long)))
	assert.Equal(t, "'"+string(long[1:])+"'", scalar.Literal(string(long[1:])))
}
