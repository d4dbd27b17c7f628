package validate

import "github.com/nwillc/jsonschemacore/pointer"

// Instance pairs a runtime data value with its JSON-Pointer path in the
// original instance document.
type Instance struct {
	Value interface{}
	Path  pointer.Pointer
}

func wrap(value interface{}) Instance {
	if inst, ok := value.(Instance); ok {
		return inst
	}
	return Instance{Value: value}
}

func (i Instance) child(key string, value interface{}) Instance {
	return Instance{Value: value, Path: i.Path.Child(key)}
}

func (i Instance) childIndex(index int, value interface{}) Instance {
	return Instance{Value: value, Path: i.Path.ChildIndex(index)}
}
