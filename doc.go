// Package jsonschemacore is the instance validation core of a JSON Schema
// validator supporting the draft-04 and draft-06 dialects.
//
// Given a compiled schema (package schema) and a runtime data value, the
// validate package decides whether the value conforms and produces
// human-readable diagnostics pointing at both the instance and the schema.
// Format predicates live in package format; JSON Pointer path handling
// lives in package pointer.
package jsonschemacore
