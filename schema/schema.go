// Package schema is the compiler/loader collaborator for the validation
// core: it parses a schema document into an opaque, read-only Schema tree
// and resolves $ref indirections into a reference map. It does not chase
// remote URIs and does not normalize beyond what draft-04/06 keyword-shape
// resolution requires.
package schema

import "regexp"

// Version is the JSON Schema dialect a document was authored against.
type Version string

const (
	Draft04 Version = "draft-04"
	Draft06 Version = "draft-06"
)

// patternPropertyEntry pairs a compiled regex with its subschema. Entries
// are kept in a slice, not a map, because map keys can't be *regexp.Regexp.
// The slice is filled by ranging over a decoded Go map, so its order is not
// the source document's order and may differ between compilations.
type patternPropertyEntry struct {
	pattern *regexp.Regexp
	schema  *Schema
}

// Schema is the compiled, opaque representation the validation core
// consumes. All accessors are read-only; nothing in this package mutates a
// Schema after Compile returns it.
type Schema struct {
	version Version
	path    string

	boolValue *bool

	ref string

	root   *Schema
	refMap map[string]*Schema

	id string

	typeList map[string]struct{}

	hasConst   bool
	constValue interface{}
	enumValues []interface{}

	maximum          *float64
	minimum          *float64
	exclusiveMaximum *float64
	exclusiveMinimum *float64
	multipleOf       *float64

	minLength *int
	maxLength *int
	pattern   *regexp.Regexp

	items                  *Schema
	itemsList              []*Schema
	additionalItemsSchema  *Schema
	additionalItemsBool    *bool
	minItems               *int
	maxItems               *int
	uniqueItems            bool
	contains               *Schema

	properties                 map[string]*Schema
	patternProperties          []patternPropertyEntry
	additionalPropertiesSchema *Schema
	additionalPropertiesBool   *bool
	propertyNamesSchema        *Schema
	minProperties              int
	maxProperties              *int
	requiredProperties         []string
	propertyDependencies       map[string][]string
	schemaDependencies         map[string]*Schema

	allOf     []*Schema
	anyOf     []*Schema
	oneOf     []*Schema
	notSchema *Schema

	format                 string
	formatMinimum          string
	formatMaximum          string
	formatExclusiveMinimum string
	formatExclusiveMaximum string
}

// SchemaBool reports whether this node is the literal boolean schema `true`
// or `false`, and its value if so.
func (s *Schema) SchemaBool() (value bool, ok bool) {
	if s.boolValue == nil {
		return false, false
	}
	return *s.boolValue, true
}

// Ref returns the node's $ref string, if any.
func (s *Schema) Ref() (string, bool) {
	if s.ref == "" {
		return "", false
	}
	return s.ref, true
}

// Root returns the root Schema of this node's document.
func (s *Schema) Root() *Schema { return s.root }

// RefMap returns the root's reference map, keyed by resolved path.
func (s *Schema) RefMap() map[string]*Schema { return s.root.refMap }

// EndPath resolves a $ref string to the key used in RefMap: the fragment
// after '#' with the leading '#' stripped, or the ref verbatim when it
// carries no fragment (an $id-qualified reference).
func (s *Schema) EndPath(ref string) string {
	return endPath(ref)
}

// SchemaVersion returns the dialect this node was compiled under.
func (s *Schema) SchemaVersion() Version { return s.version }

// Path is this node's JSON-Pointer-ish location within its document.
func (s *Schema) Path() string { return s.path }

// TypeList returns the set of allowed primitive types, if "type" was set.
func (s *Schema) TypeList() (map[string]struct{}, bool) {
	if s.typeList == nil {
		return nil, false
	}
	return s.typeList, true
}

// HasConst reports whether "const" was set, and ConstValue returns it.
func (s *Schema) HasConst() bool            { return s.hasConst }
func (s *Schema) ConstValue() interface{}   { return s.constValue }

// EnumValues returns the "enum" list, if present.
func (s *Schema) EnumValues() ([]interface{}, bool) {
	if s.enumValues == nil {
		return nil, false
	}
	return s.enumValues, true
}

func (s *Schema) Maximum() (float64, bool)          { return derefFloat(s.maximum) }
func (s *Schema) Minimum() (float64, bool)          { return derefFloat(s.minimum) }
func (s *Schema) ExclusiveMaximum() (float64, bool) { return derefFloat(s.exclusiveMaximum) }
func (s *Schema) ExclusiveMinimum() (float64, bool) { return derefFloat(s.exclusiveMinimum) }
func (s *Schema) MultipleOf() (float64, bool)       { return derefFloat(s.multipleOf) }

func (s *Schema) MinLength() (int, bool) { return derefInt(s.minLength) }
func (s *Schema) MaxLength() (int, bool) { return derefInt(s.maxLength) }

// Pattern returns the pre-compiled "pattern" regex.
func (s *Schema) Pattern() (*regexp.Regexp, bool) {
	if s.pattern == nil {
		return nil, false
	}
	return s.pattern, true
}

// Items returns the single-subschema form of "items".
func (s *Schema) Items() (*Schema, bool) {
	if s.items == nil {
		return nil, false
	}
	return s.items, true
}

// ItemsList returns the positional-list form of "items".
func (s *Schema) ItemsList() ([]*Schema, bool) {
	if s.itemsList == nil {
		return nil, false
	}
	return s.itemsList, true
}

func (s *Schema) AdditionalItemsSchema() (*Schema, bool) {
	if s.additionalItemsSchema == nil {
		return nil, false
	}
	return s.additionalItemsSchema, true
}

func (s *Schema) AdditionalItemsBool() (bool, bool) { return derefBool(s.additionalItemsBool) }

func (s *Schema) MinItems() (int, bool) { return derefInt(s.minItems) }
func (s *Schema) MaxItems() (int, bool) { return derefInt(s.maxItems) }
func (s *Schema) UniqueItems() bool     { return s.uniqueItems }

func (s *Schema) Contains() (*Schema, bool) {
	if s.contains == nil {
		return nil, false
	}
	return s.contains, true
}

func (s *Schema) Properties() (map[string]*Schema, bool) {
	if s.properties == nil {
		return nil, false
	}
	return s.properties, true
}

// PatternProperties returns the (regex, subschema) pairs, in no defined order.
func (s *Schema) PatternProperties() []patternPropertyEntry { return s.patternProperties }

func (s *Schema) AdditionalPropertiesSchema() (*Schema, bool) {
	if s.additionalPropertiesSchema == nil {
		return nil, false
	}
	return s.additionalPropertiesSchema, true
}

func (s *Schema) AdditionalPropertiesBool() (bool, bool) {
	return derefBool(s.additionalPropertiesBool)
}

func (s *Schema) PropertyNamesSchema() (*Schema, bool) {
	if s.propertyNamesSchema == nil {
		return nil, false
	}
	return s.propertyNamesSchema, true
}

func (s *Schema) MinProperties() int { return s.minProperties }
func (s *Schema) MaxProperties() (int, bool) { return derefInt(s.maxProperties) }

func (s *Schema) RequiredProperties() []string { return s.requiredProperties }

func (s *Schema) PropertyDependencies() map[string][]string { return s.propertyDependencies }
func (s *Schema) SchemaDependencies() map[string]*Schema     { return s.schemaDependencies }

func (s *Schema) AllOf() []*Schema { return s.allOf }
func (s *Schema) AnyOf() []*Schema { return s.anyOf }
func (s *Schema) OneOf() []*Schema { return s.oneOf }

func (s *Schema) NotSchema() (*Schema, bool) {
	if s.notSchema == nil {
		return nil, false
	}
	return s.notSchema, true
}

func (s *Schema) Format() (string, bool) { return derefString(s.format) }

func (s *Schema) FormatMinimum() (string, bool)          { return derefString(s.formatMinimum) }
func (s *Schema) FormatMaximum() (string, bool)          { return derefString(s.formatMaximum) }
func (s *Schema) FormatExclusiveMinimum() (string, bool) { return derefString(s.formatExclusiveMinimum) }
func (s *Schema) FormatExclusiveMaximum() (string, bool) { return derefString(s.formatExclusiveMaximum) }

// Pattern and Schema are exported for patternPropertyEntry consumers outside
// the package (validate's object-keyword block iterates these).
func (e patternPropertyEntry) Pattern() *regexp.Regexp { return e.pattern }
func (e patternPropertyEntry) Schema() *Schema         { return e.schema }

func derefFloat(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func derefInt(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func derefBool(p *bool) (bool, bool) {
	if p == nil {
		return false, false
	}
	return *p, true
}

func derefString(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return s, true
}
