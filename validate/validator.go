package validate

import (
	"github.com/nwillc/jsonschemacore/format"
	"github.com/nwillc/jsonschemacore/schema"
)

// Options configures a Validator's driver behavior (spec §4.1).
type Options struct {
	// ReportMultipleErrors, when true, runs every keyword check to
	// completion (collect-all mode). When false, the first non-annotation
	// error aborts the traversal (fail-fast mode).
	ReportMultipleErrors bool

	// ParseJSON, when true and the instance passed to Validate is a
	// string, parses it as JSON/YAML into a native value before
	// evaluation.
	ParseJSON bool
}

// Validator evaluates instances against a single compiled root schema. It
// is stateful — it owns an error list for the duration of one Validate
// call — and must not be used concurrently.
type Validator struct {
	rootSchema *schema.Schema
	options    Options
	formats    *format.Registry

	errs []ValidationError
}

// New returns a Validator for rootSchema under options, consulting
// format.DefaultRegistry for host-delegated format predicates.
func New(rootSchema *schema.Schema, options Options) *Validator {
	return &Validator{rootSchema: rootSchema, options: options, formats: format.DefaultRegistry}
}

// WithFormatRegistry overrides the format.Registry consulted for
// host-delegated format tags (uri, uri-reference, uri-template, email).
func (v *Validator) WithFormatRegistry(r *format.Registry) *Validator {
	v.formats = r
	return v
}

// failFastAbort is the internal sentinel carried through a recover()-based
// non-local exit in fail-fast mode (spec §9's "internal sentinel exception
// carrying the first error").
type failFastAbort struct {
	err ValidationError
}

// report appends err to the error list. A non-annotation error in
// fail-fast mode aborts the current evaluate() traversal via panic;
// annotations never abort.
func (v *Validator) report(err ValidationError) {
	v.errs = append(v.errs, err)
	if !err.Annotation && !v.options.ReportMultipleErrors {
		panic(failFastAbort{err})
	}
}

// Errors returns the stringified error list from the last Validate call.
func (v *Validator) Errors() []string {
	out := make([]string, len(v.errs))
	for i, e := range v.errs {
		out[i] = e.Error()
	}
	return out
}

// ErrorObjects returns the raw ValidationError list from the last
// Validate call, annotations included.
func (v *Validator) ErrorObjects() []ValidationError {
	return v.errs
}

func (v *Validator) nonAnnotationCount() int {
	count := 0
	for _, e := range v.errs {
		if !e.Annotation {
			count++
		}
	}
	return count
}
