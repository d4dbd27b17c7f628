package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwillc/jsonschemacore/schema"
)

func compile(t *testing.T, doc string, version schema.Version) *schema.Schema {
	t.Helper()
	s, err := schema.Compile([]byte(doc), version)
	require.NoError(t, err)
	return s
}

// Scenario A: contains with a matchedIndex annotation.
func TestScenarioA_ContainsAnnotation(t *testing.T) {
	s := compile(t, `{
		"type": "array",
		"contains": {
			"type": "object",
			"properties": {"name": {"type": "string", "const": "Cake"}}
		}
	}`, schema.Draft06)

	instance := []interface{}{
		map[string]interface{}{"name": "Cake"},
		map[string]interface{}{"name": "Coke"},
	}

	valid, v, err := Validate(s, instance, Options{ReportMultipleErrors: true})
	require.NoError(t, err)
	require.True(t, valid)

	objs := v.ErrorObjects()
	require.Len(t, objs, 1)
	require.True(t, objs[0].Annotation)
	require.Contains(t, objs[0].Message, "matchedIndex:0")
}

// Scenario B: format "date".
func TestScenarioB_FormatDate(t *testing.T) {
	s := compile(t, `{"type": "string", "format": "date"}`, schema.Draft06)

	valid, _, err := Validate(s, "2022-07-01", Options{})
	require.NoError(t, err)
	require.True(t, valid)

	valid, _, err = Validate(s, "2022-07-01T23:59:59", Options{})
	require.NoError(t, err)
	require.False(t, valid)
}

// Scenario C: format "time".
func TestScenarioC_FormatTime(t *testing.T) {
	s := compile(t, `{"type": "string", "format": "time"}`, schema.Draft06)

	valid, _, _ := Validate(s, "23:59:59", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "xxx23:59:59xxx", Options{})
	require.False(t, valid)

	valid, _, _ = Validate(s, "2022-07-01", Options{})
	require.False(t, valid)
}

// Scenario D: formatMinimum / formatExclusiveMaximum.
func TestScenarioD_FormatBounds(t *testing.T) {
	s := compile(t, `{
		"type": "string",
		"format": "date-time",
		"formatMinimum": "2022-07-02T00:00:00Z",
		"formatExclusiveMaximum": "2022-09-01T00:00:00Z"
	}`, schema.Draft06)

	valid, _, _ := Validate(s, "2022-07-02T00:00:00Z", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "2022-08-31T00:00:00Z", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "2022-09-01T00:00:00Z", Options{})
	require.False(t, valid)
}

// Scenario E: draft-06 relaxes "integer" to any zero-fraction number;
// draft-04 requires the source literal itself to be an integer.
func TestScenarioE_IntegerDialectDifference(t *testing.T) {
	draft06 := compile(t, `{"type": "integer"}`, schema.Draft06)

	valid, _, err := Validate(draft06, "2.0", Options{ParseJSON: true})
	require.NoError(t, err)
	require.True(t, valid)

	valid, _, err = Validate(draft06, "2.5", Options{ParseJSON: true})
	require.NoError(t, err)
	require.False(t, valid)

	draft04 := compile(t, `{"type": "integer"}`, schema.Draft04)
	valid, _, err = Validate(draft04, "2.0", Options{ParseJSON: true})
	require.NoError(t, err)
	require.False(t, valid)
}

// Scenario F: required + additionalProperties: false.
func TestScenarioF_RequiredAndAdditionalProperties(t *testing.T) {
	s := compile(t, `{
		"type": "object",
		"required": ["a"],
		"properties": {"a": {"type": "integer"}},
		"additionalProperties": false
	}`, schema.Draft06)

	valid, v, err := Validate(s, map[string]interface{}{"a": 1, "b": 2}, Options{ReportMultipleErrors: true})
	require.NoError(t, err)
	require.False(t, valid)
	require.Contains(t, allErrors(v), "unallowed additional property b")

	valid, v, err = Validate(s, map[string]interface{}{"a": "x"}, Options{ReportMultipleErrors: true})
	require.NoError(t, err)
	require.False(t, valid)
	found := false
	for _, e := range v.ErrorObjects() {
		if e.InstancePath == "/a" {
			found = true
		}
	}
	require.True(t, found)
}

func allErrors(v *Validator) string {
	out := ""
	for _, e := range v.Errors() {
		out += e + "\n"
	}
	return out
}

func TestBooleanSchemaLaw(t *testing.T) {
	trueSchema := compile(t, `true`, schema.Draft06)
	falseSchema := compile(t, `false`, schema.Draft06)

	for _, instance := range []interface{}{1.0, "x", nil, []interface{}{1.0}, map[string]interface{}{"a": 1.0}} {
		valid, _, _ := Validate(trueSchema, instance, Options{})
		require.True(t, valid)

		valid, _, _ = Validate(falseSchema, instance, Options{})
		require.False(t, valid)
	}
}

func TestNotInvolution(t *testing.T) {
	inner := `{"type": "string"}`
	s := compile(t, inner, schema.Draft06)
	doubleNot := compile(t, `{"not": {"not": `+inner+`}}`, schema.Draft06)

	for _, instance := range []interface{}{"hello", 1.0, true} {
		want, _, _ := Validate(s, instance, Options{})
		got, _, _ := Validate(doubleNot, instance, Options{})
		require.Equal(t, want, got)
	}
}

func TestAllOfConjunction(t *testing.T) {
	s := compile(t, `{"allOf": [{"type": "string"}, {"minLength": 3}]}`, schema.Draft06)

	valid, _, _ := Validate(s, "hi", Options{})
	require.False(t, valid)

	valid, _, _ = Validate(s, "hello", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, 5.0, Options{})
	require.False(t, valid)
}

func TestCollectAllSupersetOfFailFast(t *testing.T) {
	s := compile(t, `{
		"type": "object",
		"required": ["a", "b"],
		"additionalProperties": false
	}`, schema.Draft06)

	instance := map[string]interface{}{"c": 1.0}

	failFastValid, failFastV, _ := Validate(s, instance, Options{ReportMultipleErrors: false})
	collectValid, collectV, _ := Validate(s, instance, Options{ReportMultipleErrors: true})

	require.Equal(t, failFastValid, collectValid)
	require.False(t, failFastValid)
	require.GreaterOrEqual(t, len(collectV.ErrorObjects()), len(failFastV.ErrorObjects()))
}
