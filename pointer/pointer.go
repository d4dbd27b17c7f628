// Package pointer implements JSON Pointer path construction, used by the
// validate package to thread instance paths through recursive traversal and
// by the schema package to thread schema paths through compilation.
package pointer

import (
	"strconv"
	"strings"
)

// Pointer is an ordered list of JSON Pointer tokens. The empty Pointer
// denotes the document root.
type Pointer []string

// Child returns a new Pointer with token appended, leaving the receiver
// untouched.
func (p Pointer) Child(token string) Pointer {
	next := make(Pointer, len(p)+1)
	copy(next, p)
	next[len(p)] = token
	return next
}

// ChildIndex is Child for array indices.
func (p Pointer) ChildIndex(index int) Pointer {
	return p.Child(strconv.Itoa(index))
}

// String renders the Pointer back to its "/a/b/0" form. The root renders as
// the empty string.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	return "/" + strings.Join(p, "/")
}

// StripLeadingHash removes a leading "#" from a schema path, as used for
// ValidationError.SchemaPath.
func StripLeadingHash(path string) string {
	return strings.TrimPrefix(path, "#")
}
