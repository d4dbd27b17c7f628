package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwillc/jsonschemacore/schema"
)

func TestMultipleOf(t *testing.T) {
	s := compile(t, `{"multipleOf": 2.5}`, schema.Draft06)

	valid, _, _ := Validate(s, 5.0, Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, 6.0, Options{})
	require.False(t, valid)
}

func TestExclusiveBoundsPrecedence(t *testing.T) {
	s := compile(t, `{"minimum": 0, "exclusiveMinimum": 5}`, schema.Draft06)

	valid, _, _ := Validate(s, 3.0, Options{})
	require.False(t, valid, "exclusiveMinimum should replace minimum, not conjoin with it")

	valid, _, _ = Validate(s, 6.0, Options{})
	require.True(t, valid)
}

func TestDraft04ExclusiveMaximumBoolean(t *testing.T) {
	s := compile(t, `{"maximum": 10, "exclusiveMaximum": true}`, schema.Draft04)

	valid, _, _ := Validate(s, 10.0, Options{})
	require.False(t, valid)

	valid, _, _ = Validate(s, 9.0, Options{})
	require.True(t, valid)
}
