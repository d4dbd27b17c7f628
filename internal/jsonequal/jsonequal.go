// Package jsonequal implements JSON equality: numerics compared by value,
// strings by code point, arrays elementwise, objects as unordered key sets
// with recursively equal values.
package jsonequal

// Equal reports whether a and b represent the same JSON value. Values may
// come from encoding/json (numbers as float64) or from a decoder that
// preserves the int/float distinction of the source literal (such as
// go-yaml); numerics compare by value regardless of which Go numeric type
// carries them, so 1 and 1.0 are equal.
func Equal(a, b interface{}) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, aval := range av {
			bval, ok := bv[key]
			if !ok || !Equal(aval, bval) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// asFloat reports the numeric value of v across every Go numeric type a
// JSON/YAML decoder might produce, so callers never need to care whether a
// literal like "1" arrived as int or float64.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
