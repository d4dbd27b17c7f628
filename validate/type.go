package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/nwillc/jsonschemacore/schema"
)

// isIntegerGo reports whether value arrived tagged as a Go integer type —
// the signal, when the instance came through the package's own JSON/YAML
// convenience parse, that its source literal had no decimal point.
func isIntegerGo(value interface{}) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isNumericGo(value interface{}) bool {
	if isIntegerGo(value) {
		return true
	}
	switch value.(type) {
	case float32, float64:
		return true
	}
	return false
}

// numericValue returns value's numeric magnitude regardless of its
// concrete Go numeric type.
func numericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// matchesType reports whether value's runtime shape satisfies typeName.
// "integer" is satisfied either by a Go-integer-tagged value or, only
// under draft-06, by any number whose fractional part is zero — draft-04
// requires the source literal itself to have been an integer.
func matchesType(typeName string, value interface{}, version schema.Version) bool {
	switch typeName {
	case "object":
		_, ok := value.(map[string]interface{})
		return ok
	case "array":
		_, ok := value.([]interface{})
		return ok
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "null":
		return value == nil
	case "number":
		return isNumericGo(value)
	case "integer":
		if isIntegerGo(value) {
			return true
		}
		if version != schema.Draft06 {
			return false
		}
		f, ok := numericValue(value)
		return ok && f == math.Trunc(f)
	default:
		return false
	}
}

// describeShape names value's runtime shape for type-mismatch messages.
func describeShape(value interface{}) string {
	switch {
	case value == nil:
		return "null"
	case isIntegerGo(value):
		return "integer"
	case isNumericGo(value):
		return "number"
	}
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func sortedTypeNames(types map[string]struct{}) []string {
	names := make([]string, 0, len(types))
	for t := range types {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}

func (v *Validator) checkType(s *schema.Schema, inst Instance) {
	types, ok := s.TypeList()
	if !ok || len(types) == 0 {
		return
	}

	for t := range types {
		if matchesType(t, inst.Value, s.SchemaVersion()) {
			return
		}
	}

	v.report(fail(inst.Path, s.Path()+"/type",
		fmt.Sprintf("type: wanted %v got %s", sortedTypeNames(types), describeShape(inst.Value))))
}
