package validate

import (
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/nwillc/jsonschemacore/schema"
)

// Validate constructs a Validator for rootSchema and runs it once against
// instance, mirroring the free-function driver described in the core:
// validate(rootSchema, instance, options) -> bool. The returned Validator
// retains Errors()/ErrorObjects() for the call just completed.
func Validate(rootSchema *schema.Schema, instance interface{}, options Options) (bool, *Validator, error) {
	v := New(rootSchema, options)
	valid, err := v.Validate(instance)
	return valid, v, err
}

// Validate runs the driver against instance using v's configured Options,
// returning true iff no non-annotation errors were collected. A parse
// failure under ParseJSON is an invalid-argument error distinct from a
// validation failure.
func (v *Validator) Validate(instance interface{}) (bool, error) {
	if v.options.ParseJSON {
		if s, ok := instance.(string); ok {
			var parsed interface{}
			if err := yaml.Unmarshal([]byte(s), &parsed); err != nil {
				return false, errors.Wrap(err, "invalid-argument: could not parse instance")
			}
			instance = parsed
		}
	}

	v.errs = nil
	v.runEvaluate(instance)

	return v.nonAnnotationCount() == 0, nil
}

// runEvaluate invokes evaluate under a recover() that absorbs the
// failFastAbort sentinel (and any other internal fault, per spec §7: an
// unexpected exception in fail-fast mode must not propagate).
func (v *Validator) runEvaluate(instance interface{}) {
	defer func() {
		recover()
	}()
	v.evaluate(v.rootSchema, wrap(instance))
}

// evaluate is the central recursive dispatch (spec §4.2).
func (v *Validator) evaluate(s *schema.Schema, inst Instance) {
	if boolValue, ok := s.SchemaBool(); ok {
		if !boolValue {
			v.report(fail(inst.Path, s.Path(), "schema is the literal false; no instance is valid"))
		}
		return
	}

	if ref, ok := s.Ref(); ok {
		target, ok := s.RefMap()[s.EndPath(ref)]
		if !ok {
			v.report(fail(inst.Path, s.Path(), "$ref "+ref+" does not resolve"))
			return
		}
		s = target
	}

	v.checkType(s, inst)
	v.checkConst(s, inst)
	v.checkEnum(s, inst)

	if _, ok := inst.Value.([]interface{}); ok {
		v.checkArrayKeywords(s, inst)
	}
	if _, ok := inst.Value.(string); ok {
		v.checkStringKeywords(s, inst)
	}
	if isNumericGo(inst.Value) {
		v.checkNumericKeywords(s, inst)
	}

	v.checkComposition(s, inst)
	v.checkFormatKeywords(s, inst)

	if _, ok := inst.Value.(map[string]interface{}); ok {
		v.checkObjectKeywords(s, inst)
	}
}

// evaluateChild runs schema against value using a fresh Validator that
// shares the parent's format registry but is independently fail-fast
// (spec §9: composition/contains/dependency children run in fail-fast
// mode internally; only their boolean outcome matters). Its error list is
// discarded by the caller.
func (v *Validator) evaluateChild(s *schema.Schema, value interface{}) bool {
	child := &Validator{rootSchema: s, options: Options{ReportMultipleErrors: false}, formats: v.formats}
	child.runEvaluate(value)
	return child.nonAnnotationCount() == 0
}
