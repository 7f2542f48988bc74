package portal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a member or index value as it appears in a data
// command file. Slices and arrays render as comma-separated tuples.
// Floats always carry a decimal point or an exponent, so 2.0 stays distinct
// from the integer 2.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case Index:
		return string(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// IndexOf builds the index for the given key values. A single value yields
// that value's text; several values yield a comma-separated tuple key.
// IndexOf() returns [NoIndex].
func IndexOf(vals ...any) Index {
	if len(vals) == 0 {
		return NoIndex
	}
	return Index(FormatValue(vals))
}

// formatFloat renders x in shortest round-trip form, switching to exponent
// notation below 1e-4 and from 1e16 on.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(x, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
