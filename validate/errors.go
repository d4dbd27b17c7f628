package validate

import (
	"fmt"

	"github.com/nwillc/jsonschemacore/pointer"
)

// ValidationError is a single diagnostic record: the instance and schema
// locations of a failed keyword check, and a free-form message. Message
// prefixes (type:, maximum exceeded, allOf violated, matchedIndex:, ...)
// are part of the contract for callers that pattern-match them.
//
// Annotation records (currently only matchedIndex:) are non-failing: they
// ride in the same list but never affect validity and never trigger
// fail-fast abort.
type ValidationError struct {
	InstancePath string
	SchemaPath   string
	Message      string
	Annotation   bool
}

func (e ValidationError) Error() string {
	instancePath := e.InstancePath
	if instancePath == "" {
		instancePath = "# (root)"
	}
	return fmt.Sprintf("%s: %s", instancePath, e.Message)
}

func fail(instancePath pointer.Pointer, schemaPath, message string) ValidationError {
	return ValidationError{
		InstancePath: instancePath.String(),
		SchemaPath:   pointer.StripLeadingHash(schemaPath),
		Message:      message,
	}
}

func annotation(instancePath pointer.Pointer, schemaPath, message string) ValidationError {
	e := fail(instancePath, schemaPath, message)
	e.Annotation = true
	return e
}
