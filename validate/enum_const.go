package validate

import (
	"fmt"

	"github.com/nwillc/jsonschemacore/internal/jsonequal"
	"github.com/nwillc/jsonschemacore/schema"
)

func (v *Validator) checkConst(s *schema.Schema, inst Instance) {
	if !s.HasConst() {
		return
	}
	if !jsonequal.Equal(s.ConstValue(), inst.Value) {
		v.report(fail(inst.Path, s.Path()+"/const", fmt.Sprintf("const violated: %v != %v", inst.Value, s.ConstValue())))
	}
}

func (v *Validator) checkEnum(s *schema.Schema, inst Instance) {
	values, ok := s.EnumValues()
	if !ok {
		return
	}
	for _, candidate := range values {
		if jsonequal.Equal(candidate, inst.Value) {
			return
		}
	}
	v.report(fail(inst.Path, s.Path()+"/enum", fmt.Sprintf("enum violated: %v not in %v", inst.Value, values)))
}
