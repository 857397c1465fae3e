package scalar

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// LongStringThreshold is the rune count above which strings are summarised
// by their length instead of their content.
const LongStringThreshold = 50

// Literal returns a short literal-style rendering of a scalar value.
// Strings are single-quoted; strings longer than LongStringThreshold yield
// an empty literal and the caller reports the length instead.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		if utf8.RuneCountInString(x) > LongStringThreshold {
			return ""
		}
		return "'" + x + "'"
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(x)
	}
}
