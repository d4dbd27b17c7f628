package validate

import (
	"fmt"
	"strings"

	"github.com/nwillc/jsonschemacore/schema"
)

// checkObjectKeywords implements spec §4.7.
func (v *Validator) checkObjectKeywords(s *schema.Schema, inst Instance) {
	obj, ok := inst.Value.(map[string]interface{})
	if !ok {
		return
	}

	n := len(obj)
	if n < s.MinProperties() {
		v.report(fail(inst.Path, s.Path()+"/minProperties", fmt.Sprintf("minProperties violated (%d < %d)", n, s.MinProperties())))
	}
	if max, ok := s.MaxProperties(); ok && n > max {
		v.report(fail(inst.Path, s.Path()+"/maxProperties", fmt.Sprintf("maxProperties violated (%d > %d)", n, max)))
	}

	for _, name := range s.RequiredProperties() {
		if _, ok := obj[name]; !ok {
			v.report(fail(inst.Path, s.Path()+"/required", fmt.Sprintf("required prop missing: %s from %v", name, inst.Value)))
		}
	}

	properties, _ := s.Properties()
	patternProperties := s.PatternProperties()
	addlSchema, hasAddlSchema := s.AdditionalPropertiesSchema()
	addlBool, hasAddlBool := s.AdditionalPropertiesBool()
	propertyNamesSchema, hasPropertyNames := s.PropertyNamesSchema()

	for key, value := range obj {
		if hasPropertyNames {
			v.evaluate(propertyNamesSchema, Instance{Value: key, Path: inst.Path})
		}

		covered := false

		if properties != nil {
			if propSchema, ok := properties[key]; ok {
				v.evaluate(propSchema, inst.child(key, value))
				covered = true
			}
		}

		for _, entry := range patternProperties {
			if entry.Pattern().MatchString(key) {
				v.evaluate(entry.Schema(), inst.child(key, value))
				covered = true
			}
		}

		if covered {
			continue
		}

		if hasAddlSchema {
			v.evaluate(addlSchema, inst.child(key, value))
		} else if hasAddlBool && !addlBool {
			v.report(fail(inst.Path, s.Path()+"/additionalProperties", fmt.Sprintf("unallowed additional property %s", key)))
		}
	}

	for key, peers := range s.PropertyDependencies() {
		if _, ok := obj[key]; !ok {
			continue
		}
		var missing []string
		for _, peer := range peers {
			if _, ok := obj[peer]; !ok {
				missing = append(missing, peer)
			}
		}
		if len(missing) > 0 {
			v.report(fail(inst.Path, s.Path()+"/dependencies",
				fmt.Sprintf("prop %s => %s required", key, strings.Join(missing, ", "))))
		}
	}

	for key, depSchema := range s.SchemaDependencies() {
		if _, ok := obj[key]; !ok {
			continue
		}
		if !v.evaluateChild(depSchema, inst.Value) {
			v.report(fail(inst.Path, s.Path()+"/dependencies", fmt.Sprintf("prop %s violated schema dependency", key)))
		}
	}
}
