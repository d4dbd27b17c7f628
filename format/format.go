// Package format implements the "format" keyword's built-in predicates
// (regex-based for ipv4/ipv6/hostname/json-pointer, ISO-8601 parsing for
// date-time/date/time) plus a process-wide registry for the host-supplied
// predicates (uri/uri-reference/uri-template/email) that spec.md treats as
// external collaborators.
package format

import (
	"regexp"
	"strings"
	"time"
)

// Draft-06-only formats. Using any of these against a draft-04 schema is a
// compilation-time-visible but evaluation-time-reported error.
var draft06OnlyFormats = map[string]struct{}{
	"uri-reference": {},
	"uri-template":  {},
	"json-pointer":  {},
}

// IsDraft06Only reports whether tag is only meaningful from draft-06 onward.
func IsDraft06Only(tag string) bool {
	_, ok := draft06OnlyFormats[tag]
	return ok
}

// Predicate validates a single string value for a format tag.
type Predicate func(string) bool

// Registry is a process-wide table of host-supplied predicates for formats
// the core cannot itself validate (uri, uri-reference, uri-template,
// email). An absent predicate behaves as always-false, per spec.md §6.
type Registry struct {
	predicates map[string]Predicate
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[string]Predicate)}
}

// Register installs or replaces the predicate for tag.
func (r *Registry) Register(tag string, predicate Predicate) {
	r.predicates[tag] = predicate
}

// Lookup returns the predicate for tag and whether one is registered.
func (r *Registry) Lookup(tag string) (Predicate, bool) {
	p, ok := r.predicates[tag]
	return p, ok
}

// DefaultRegistry is the process-wide registry consulted when a Validator
// is not configured with its own. Hosts populate it with real uri/email
// predicates during program initialization; the core never invents one.
var DefaultRegistry = NewRegistry()

// hostDelegatedFormats lists the tags that always defer to a Registry
// rather than a built-in predicate.
var hostDelegatedFormats = map[string]struct{}{
	"uri":           {},
	"uri-reference": {},
	"uri-template":  {},
	"email":         {},
}

// IsHostDelegated reports whether tag is resolved via the Registry rather
// than a built-in predicate.
func IsHostDelegated(tag string) bool {
	_, ok := hostDelegatedFormats[tag]
	return ok
}

// IsKnownFormat reports whether tag is a format this package recognizes at
// all (built-in or host-delegated). Anything else is "<tag> not supported
// as format" per spec.md §4.9.
func IsKnownFormat(tag string) bool {
	if IsHostDelegated(tag) {
		return true
	}
	switch tag {
	case "date-time", "date", "time", "ipv4", "ipv6", "hostname", "json-pointer":
		return true
	}
	return false
}

// dateTimeLayouts covers both the fully offset-qualified RFC 3339 form and
// the bare local-time form ISO-8601 also permits (no "Z"/±hh:mm suffix).
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDateTime checks an ISO-8601 date-time with a literal 'T'
// separator; strings without one are rejected outright.
func IsValidDateTime(value string) bool {
	if !strings.ContainsAny(value, "Tt") {
		return false
	}
	_, ok := parseDateTime(value)
	return ok
}

// IsValidDate checks an RFC 3339 full-date, rejecting any value containing
// a 'T' (which would make it a date-time, not a bare date).
func IsValidDate(value string) bool {
	if strings.ContainsAny(value, "Tt") {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// IsValidTime checks an RFC 3339 full-time by splicing it onto an arbitrary
// date and parsing the result as a date-time.
func IsValidTime(value string) bool {
	return IsValidDateTime("1970-01-01T" + value)
}

var ipv4Pattern = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])){3}$`)

// IsValidIPv4 checks the "dotted-quad" ABNF syntax of RFC 2673 §3.2.
func IsValidIPv4(value string) bool {
	return ipv4Pattern.MatchString(value)
}

var ipv6Pattern = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,7}:|([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,5}(:[0-9a-fA-F]{1,4}){1,2}|([0-9a-fA-F]{1,4}:){1,4}(:[0-9a-fA-F]{1,4}){1,3}|([0-9a-fA-F]{1,4}:){1,3}(:[0-9a-fA-F]{1,4}){1,4}|([0-9a-fA-F]{1,4}:){1,2}(:[0-9a-fA-F]{1,4}){1,5}|[0-9a-fA-F]{1,4}:((:[0-9a-fA-F]{1,4}){1,6})|:((:[0-9a-fA-F]{1,4}){1,7}|:))$`)

// IsValidIPv6 checks RFC 4291 §2.2 textual representation.
func IsValidIPv6(value string) bool {
	return ipv6Pattern.MatchString(value)
}

var hostnameLabelPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// IsValidHostname checks RFC 1034 §3.1 labels: 1-63 chars, alphanumeric or
// hyphen, never starting or ending with a hyphen, joined by dots, total
// length at most 255.
func IsValidHostname(value string) bool {
	if len(value) > 255 {
		return false
	}
	trimmed := strings.TrimSuffix(value, ".")
	for _, label := range strings.Split(trimmed, ".") {
		if !hostnameLabelPattern.MatchString(label) {
			return false
		}
	}
	return true
}

var unescapedTildePattern = regexp.MustCompile(`~[^01]`)
var trailingTildePattern = regexp.MustCompile(`~$`)

// IsValidJSONPointer checks RFC 6901 §5 syntax: must start with '/' (or be
// empty) and every '~' must be escaped as '~0' or '~1'.
func IsValidJSONPointer(value string) bool {
	if len(value) == 0 {
		return true
	}
	if value[0] != '/' {
		return false
	}
	body := value[1:]
	if unescapedTildePattern.MatchString(body) {
		return false
	}
	if trailingTildePattern.MatchString(body) {
		return false
	}
	return true
}

// CompareFormatBound parses schema and value as ISO-8601 date-times and
// returns sign(schema - value); ok is false if either fails to parse.
func CompareFormatBound(schemaLiteral, value string) (sign int, ok bool) {
	schemaTime, schemaOk := parseDateTime(schemaLiteral)
	valueTime, valueOk := parseDateTime(value)
	if !schemaOk || !valueOk {
		return 0, false
	}
	switch {
	case schemaTime.After(valueTime):
		return 1, true
	case schemaTime.Before(valueTime):
		return -1, true
	default:
		return 0, true
	}
}
