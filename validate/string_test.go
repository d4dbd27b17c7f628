package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwillc/jsonschemacore/schema"
)

func TestStringLengthCountsCodePoints(t *testing.T) {
	s := compile(t, `{"minLength": 2, "maxLength": 2}`, schema.Draft06)

	// "日本" is two code points but six UTF-8 bytes.
	valid, _, _ := Validate(s, "日本", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "a", Options{})
	require.False(t, valid)
}

func TestPatternKeyword(t *testing.T) {
	s := compile(t, `{"pattern": "^[0-9]+$"}`, schema.Draft06)

	valid, _, _ := Validate(s, "12345", Options{})
	require.True(t, valid)

	valid, _, _ = Validate(s, "12a45", Options{})
	require.False(t, valid)
}
