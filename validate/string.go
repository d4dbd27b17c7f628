package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/nwillc/jsonschemacore/schema"
)

// checkStringKeywords implements spec §4.5. Length is measured in Unicode
// code points, not UTF-16 units or bytes.
func (v *Validator) checkStringKeywords(s *schema.Schema, inst Instance) {
	str, ok := inst.Value.(string)
	if !ok {
		return
	}
	length := utf8.RuneCountInString(str)

	if max, ok := s.MaxLength(); ok && length > max {
		v.report(fail(inst.Path, s.Path()+"/maxLength", fmt.Sprintf("maxLength exceeded (%d > %d)", length, max)))
	}
	if min, ok := s.MinLength(); ok && length < min {
		v.report(fail(inst.Path, s.Path()+"/minLength", fmt.Sprintf("minLength violated (%d < %d)", length, min)))
	}
	if pattern, ok := s.Pattern(); ok && !pattern.MatchString(str) {
		v.report(fail(inst.Path, s.Path()+"/pattern", fmt.Sprintf("pattern violated: %q !~ %s", str, pattern.String())))
	}
}
