package schema

import "fmt"

// CompilationError reports a schema document that could not be compiled:
// malformed JSON, an unsupported $schema draft, an ill-shaped keyword value
// or an invalid regex. A $ref that resolves to nothing is not detected at
// compile time; it is reported when an instance is validated.
type CompilationError struct {
	Path   string
	Reason string
}

func (e *CompilationError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("schema compilation failed in path %s: %s", path, e.Reason)
}

// UnsupportedDraftError reports a $schema value this module does not
// recognize as either draft-04 or draft-06.
type UnsupportedDraftError string

func (e UnsupportedDraftError) Error() string {
	return fmt.Sprintf("draft %q is not supported", string(e))
}
