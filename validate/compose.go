package validate

import (
	"github.com/nwillc/jsonschemacore/schema"
)

// checkComposition implements spec §4.8. Each branch uses fresh child
// validators whose error lists are discarded — only the one composite
// summary error is surfaced, so an intentional alternative failing in
// anyOf/oneOf never pollutes the caller's diagnostics.
func (v *Validator) checkComposition(s *schema.Schema, inst Instance) {
	if allOf := s.AllOf(); len(allOf) > 0 {
		ok := true
		for _, sub := range allOf {
			if !v.evaluateChild(sub, inst.Value) {
				ok = false
			}
		}
		if !ok {
			v.report(fail(inst.Path, s.Path()+"/allOf", "allOf violated"))
		}
	}

	if anyOf := s.AnyOf(); len(anyOf) > 0 {
		ok := false
		for _, sub := range anyOf {
			if v.evaluateChild(sub, inst.Value) {
				ok = true
				break
			}
		}
		if !ok {
			v.report(fail(inst.Path, s.Path()+"/anyOf", "anyOf violated"))
		}
	}

	if oneOf := s.OneOf(); len(oneOf) > 0 {
		matches := 0
		for _, sub := range oneOf {
			if v.evaluateChild(sub, inst.Value) {
				matches++
			}
		}
		if matches != 1 {
			v.report(fail(inst.Path, s.Path()+"/oneOf", "oneOf violated"))
		}
	}

	if notSchema, ok := s.NotSchema(); ok {
		if v.evaluateChild(notSchema, inst.Value) {
			v.report(fail(inst.Path, notSchema.Path(), "not violated"))
		}
	}
}
