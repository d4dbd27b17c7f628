package validate

import (
	"fmt"

	"github.com/nwillc/jsonschemacore/internal/jsonequal"
	"github.com/nwillc/jsonschemacore/schema"
)

// checkArrayKeywords implements spec §4.4.
func (v *Validator) checkArrayKeywords(s *schema.Schema, inst Instance) {
	items, ok := inst.Value.([]interface{})
	if !ok {
		return
	}
	n := len(items)

	v.checkItems(s, inst, items, n)

	if min, ok := s.MinItems(); ok && n < min {
		v.report(fail(inst.Path, s.Path()+"/minItems", fmt.Sprintf("minItems violated (%d < %d)", n, min)))
	}
	if max, ok := s.MaxItems(); ok && n > max {
		v.report(fail(inst.Path, s.Path()+"/maxItems", fmt.Sprintf("maxItems exceeded (%d > %d)", n, max)))
	}

	if s.UniqueItems() {
		v.checkUniqueItems(s, inst, items)
	}

	if containsSchema, ok := s.Contains(); ok {
		v.checkContains(s, inst, containsSchema, items)
	}
}

func (v *Validator) checkItems(s *schema.Schema, inst Instance, items []interface{}, n int) {
	if single, ok := s.Items(); ok {
		for i, item := range items {
			v.evaluate(single, inst.childIndex(i, item))
		}
		return
	}

	list, ok := s.ItemsList()
	if !ok {
		return
	}

	bound := len(list)
	if n < bound {
		bound = n
	}
	for i := 0; i < bound; i++ {
		v.evaluate(list[i], inst.childIndex(i, items[i]))
	}

	if additionalSchema, ok := s.AdditionalItemsSchema(); ok {
		for i := len(list); i < n; i++ {
			v.evaluate(additionalSchema, inst.childIndex(i, items[i]))
		}
		return
	}

	if allowed, ok := s.AdditionalItemsBool(); ok && !allowed && n > len(list) {
		v.report(fail(inst.Path, s.Path()+"/additionalItems", "additionalItems false"))
	}
}

func (v *Validator) checkUniqueItems(s *schema.Schema, inst Instance, items []interface{}) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if jsonequal.Equal(items[i], items[j]) {
				v.report(fail(inst.Path, s.Path()+"/uniqueItems", fmt.Sprintf("uniqueItems violated: %v [%d]==[%d]", inst.Value, i, j)))
			}
		}
	}
}

// checkContains runs a fail-fast child validator per element. If no
// element matches, contains violated. If at least one matches, the index
// of the first match is surfaced as a non-failing matchedIndex: annotation
// (spec §4.4, §9) regardless of any other errors already pending.
func (v *Validator) checkContains(s *schema.Schema, inst Instance, containsSchema *schema.Schema, items []interface{}) {
	matched := -1
	for i, item := range items {
		if v.evaluateChild(containsSchema, item) {
			matched = i
			break
		}
	}

	if matched < 0 {
		v.report(fail(inst.Path, s.Path()+"/contains", "contains violated"))
		return
	}

	v.report(annotation(inst.Path, s.Path()+"/contains", fmt.Sprintf("matchedIndex:%d", matched)))
}
