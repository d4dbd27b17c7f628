package validate

import (
	"fmt"

	"github.com/nwillc/jsonschemacore/format"
	"github.com/nwillc/jsonschemacore/schema"
)

// checkFormatKeywords implements spec §4.9. Every format keyword requires
// a string instance; anything else is a type-mismatch error naming the
// instance's runtime shape.
func (v *Validator) checkFormatKeywords(s *schema.Schema, inst Instance) {
	tag, hasFormat := s.Format()
	fMin, hasFMin := s.FormatMinimum()
	fMax, hasFMax := s.FormatMaximum()
	fExclMin, hasFExclMin := s.FormatExclusiveMinimum()
	fExclMax, hasFExclMax := s.FormatExclusiveMaximum()

	if !hasFormat && !hasFMin && !hasFMax && !hasFExclMin && !hasFExclMax {
		return
	}

	str, ok := inst.Value.(string)
	if !ok {
		v.report(fail(inst.Path, s.Path()+"/format", fmt.Sprintf("format requires a string, got %s", describeShape(inst.Value))))
		return
	}

	if hasFormat {
		v.checkFormat(s, inst, tag, str)
	}
	if hasFMin {
		v.checkFormatBound(s, inst, "formatMinimum", fMin, str)
	}
	if hasFMax {
		v.checkFormatBound(s, inst, "formatMaximum", fMax, str)
	}
	if hasFExclMin {
		v.checkFormatBound(s, inst, "formatExclusiveMinimum", fExclMin, str)
	}
	if hasFExclMax {
		v.checkFormatBound(s, inst, "formatExclusiveMaximum", fExclMax, str)
	}
}

func (v *Validator) checkFormat(s *schema.Schema, inst Instance, tag, value string) {
	if !format.IsKnownFormat(tag) {
		v.report(fail(inst.Path, s.Path()+"/format", fmt.Sprintf("%s not supported as format", tag)))
		return
	}

	if format.IsDraft06Only(tag) && s.SchemaVersion() != schema.Draft06 {
		v.report(fail(inst.Path, s.Path()+"/format", fmt.Sprintf("%q not supported as format before draft6", tag)))
		return
	}

	if format.IsHostDelegated(tag) {
		predicate, ok := v.formats.Lookup(tag)
		if !ok || !predicate(value) {
			v.report(fail(inst.Path, s.Path()+"/format", fmt.Sprintf("%q format not accepted", tag)))
		}
		return
	}

	var valid bool
	switch tag {
	case "date-time":
		valid = format.IsValidDateTime(value)
	case "date":
		valid = format.IsValidDate(value)
	case "time":
		valid = format.IsValidTime(value)
	case "ipv4":
		valid = format.IsValidIPv4(value)
	case "ipv6":
		valid = format.IsValidIPv6(value)
	case "hostname":
		valid = format.IsValidHostname(value)
	case "json-pointer":
		valid = format.IsValidJSONPointer(value)
	}

	if !valid {
		v.report(fail(inst.Path, s.Path()+"/format", fmt.Sprintf("%q format not accepted", tag)))
	}
}

// checkFormatBound implements the four formatMinimum/Maximum/Exclusive...
// keywords: parse both the schema literal and the instance as ISO-8601
// date-times and compare sign(schema - value).
func (v *Validator) checkFormatBound(s *schema.Schema, inst Instance, keyword, bound, value string) {
	sign, ok := format.CompareFormatBound(bound, value)
	if !ok {
		v.report(fail(inst.Path, s.Path()+"/"+keyword, `"date-time" format not accepted`))
		return
	}

	var violated bool
	switch keyword {
	case "formatMinimum":
		violated = sign > 0
	case "formatMaximum":
		violated = sign < 0
	case "formatExclusiveMinimum":
		violated = sign >= 0
	case "formatExclusiveMaximum":
		violated = sign <= 0
	}

	if violated {
		v.report(fail(inst.Path, s.Path()+"/"+keyword, fmt.Sprintf("%s violated", keyword)))
	}
}
