package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwillc/jsonschemacore/format"
	"github.com/nwillc/jsonschemacore/schema"
)

func TestUnknownFormatRejected(t *testing.T) {
	s := compile(t, `{"format": "not-a-real-format"}`, schema.Draft06)
	valid, v, _ := Validate(s, "anything", Options{})
	require.False(t, valid)
	require.Contains(t, allErrors(v), "not supported as format")
}

func TestDraft06OnlyFormatRejectedBeforeDraft6(t *testing.T) {
	s := compile(t, `{"format": "uri-reference"}`, schema.Draft04)
	valid, v, _ := Validate(s, "/relative", Options{})
	require.False(t, valid)
	require.Contains(t, allErrors(v), "not supported as format before draft6")
}

func TestHostDelegatedFormatPredicate(t *testing.T) {
	s := compile(t, `{"format": "email"}`, schema.Draft06)

	registry := format.NewRegistry()
	registry.Register("email", func(value string) bool { return value == "a@b.com" })

	v := New(s, Options{}).WithFormatRegistry(registry)

	valid, err := v.Validate("a@b.com")
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = v.Validate("not-an-email")
	require.NoError(t, err)
	require.False(t, valid)
}

func TestHostDelegatedFormatMissingPredicateFailsClosed(t *testing.T) {
	s := compile(t, `{"format": "email"}`, schema.Draft06)
	valid, _, _ := Validate(s, "a@b.com", Options{})
	require.False(t, valid)
}

func TestIPv4AndHostnameFormats(t *testing.T) {
	ip := compile(t, `{"format": "ipv4"}`, schema.Draft06)
	valid, _, _ := Validate(ip, "192.168.1.1", Options{})
	require.True(t, valid)
	valid, _, _ = Validate(ip, "not-an-ip", Options{})
	require.False(t, valid)

	host := compile(t, `{"format": "hostname"}`, schema.Draft06)
	valid, _, _ = Validate(host, "example.com", Options{})
	require.True(t, valid)
}
