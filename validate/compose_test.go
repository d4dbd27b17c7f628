package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwillc/jsonschemacore/schema"
)

func TestAnyOf(t *testing.T) {
	s := compile(t, `{"anyOf": [{"type": "string"}, {"type": "number"}]}`, schema.Draft06)

	valid, _, _ := Validate(s, "x", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, 1.0, Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, true, Options{})
	require.False(t, valid)
}

func TestOneOf(t *testing.T) {
	s := compile(t, `{"oneOf": [{"minimum": 0}, {"maximum": 10}]}`, schema.Draft06)

	// Exactly one: matches only "minimum" (above 10, below maximum fails).
	valid, _, _ := Validate(s, 20.0, Options{})
	require.True(t, valid)

	// Matches both minimum(>=0) and maximum(<=10): violates exactly-one.
	valid, _, _ = Validate(s, 5.0, Options{})
	require.False(t, valid)

	// Matches neither.
	valid, _, _ = Validate(s, -5.0, Options{})
	require.False(t, valid)
}

func TestNotKeyword(t *testing.T) {
	s := compile(t, `{"not": {"type": "string"}}`, schema.Draft06)

	valid, _, _ := Validate(s, 1.0, Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "x", Options{})
	require.False(t, valid)
}
