package validate

import (
	"fmt"
	"math"

	"github.com/nwillc/jsonschemacore/schema"
)

// checkNumericKeywords implements spec §4.6. Exclusive bounds take
// precedence over their inclusive counterparts when both are set — the
// schema package has already folded draft-04's boolean-paired shape into
// the same ExclusiveMaximum/ExclusiveMinimum accessors draft-06 uses.
func (v *Validator) checkNumericKeywords(s *schema.Schema, inst Instance) {
	n, ok := numericValue(inst.Value)
	if !ok {
		return
	}

	if bound, ok := s.ExclusiveMaximum(); ok {
		if n >= bound {
			v.report(fail(inst.Path, s.Path()+"/exclusiveMaximum", fmt.Sprintf("exclusiveMaximum exceeded (%v >= %v)", n, bound)))
		}
	} else if bound, ok := s.Maximum(); ok {
		if n > bound {
			v.report(fail(inst.Path, s.Path()+"/maximum", fmt.Sprintf("maximum exceeded (%v > %v)", n, bound)))
		}
	}

	if bound, ok := s.ExclusiveMinimum(); ok {
		if n <= bound {
			v.report(fail(inst.Path, s.Path()+"/exclusiveMinimum", fmt.Sprintf("exclusiveMinimum violated (%v <= %v)", n, bound)))
		}
	} else if bound, ok := s.Minimum(); ok {
		if n < bound {
			v.report(fail(inst.Path, s.Path()+"/minimum", fmt.Sprintf("minimum violated (%v < %v)", n, bound)))
		}
	}

	if m, ok := s.MultipleOf(); ok {
		if !isMultipleOf(n, m) {
			v.report(fail(inst.Path, s.Path()+"/multipleOf", fmt.Sprintf("multipleOf violated (%v %% %v)", n, m)))
		}
	}
}

func isMultipleOf(n, m float64) bool {
	if n == math.Trunc(n) && m == math.Trunc(m) {
		return math.Mod(n, m) == 0
	}
	quotient := n / m
	return quotient == math.Trunc(quotient)
}
