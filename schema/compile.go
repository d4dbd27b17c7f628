package schema

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// rawSchema mirrors the subset of JSON Schema keywords this compiler
// understands. Keywords whose shape varies (type, items, additionalItems,
// additionalProperties, dependencies, exclusiveMaximum/Minimum) are decoded
// as json.RawMessage and split apart in keywordshapes.go.
type rawSchema struct {
	Schema string `json:"$schema,omitempty"`
	Ref    string `json:"$ref,omitempty"`
	Id     string `json:"$id,omitempty"`

	Definitions map[string]json.RawMessage `json:"definitions,omitempty"`
	Defs        map[string]json.RawMessage `json:"$defs,omitempty"`

	Type json.RawMessage `json:"type,omitempty"`

	Const json.RawMessage `json:"const,omitempty"`
	Enum  []interface{}   `json:"enum,omitempty"`

	Maximum          *float64        `json:"maximum,omitempty"`
	Minimum          *float64        `json:"minimum,omitempty"`
	ExclusiveMaximum json.RawMessage `json:"exclusiveMaximum,omitempty"`
	ExclusiveMinimum json.RawMessage `json:"exclusiveMinimum,omitempty"`
	MultipleOf       *float64        `json:"multipleOf,omitempty"`

	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	Items           json.RawMessage `json:"items,omitempty"`
	AdditionalItems json.RawMessage `json:"additionalItems,omitempty"`
	MinItems        *int            `json:"minItems,omitempty"`
	MaxItems        *int            `json:"maxItems,omitempty"`
	UniqueItems     bool            `json:"uniqueItems,omitempty"`
	Contains        json.RawMessage `json:"contains,omitempty"`

	Properties           map[string]json.RawMessage `json:"properties,omitempty"`
	PatternProperties    map[string]json.RawMessage `json:"patternProperties,omitempty"`
	AdditionalProperties json.RawMessage            `json:"additionalProperties,omitempty"`
	PropertyNames        json.RawMessage            `json:"propertyNames,omitempty"`
	MinProperties        int                        `json:"minProperties,omitempty"`
	MaxProperties        *int                       `json:"maxProperties,omitempty"`
	Required             []string                   `json:"required,omitempty"`
	Dependencies         map[string]json.RawMessage `json:"dependencies,omitempty"`

	AllOf []json.RawMessage `json:"allOf,omitempty"`
	AnyOf []json.RawMessage `json:"anyOf,omitempty"`
	OneOf []json.RawMessage `json:"oneOf,omitempty"`
	Not   json.RawMessage   `json:"not,omitempty"`

	Format                 string `json:"format,omitempty"`
	FormatMinimum          string `json:"formatMinimum,omitempty"`
	FormatMaximum          string `json:"formatMaximum,omitempty"`
	FormatExclusiveMinimum string `json:"formatExclusiveMinimum,omitempty"`
	FormatExclusiveMaximum string `json:"formatExclusiveMaximum,omitempty"`
}

// Compile parses document and returns the root of its compiled tree.
// defaultVersion governs draft-dependent keyword shapes unless the
// document's own "$schema" names a recognized draft.
func Compile(document []byte, defaultVersion Version) (*Schema, error) {
	root := &Schema{refMap: make(map[string]*Schema), version: defaultVersion}
	root.root = root

	if err := compileNode(root, root, document, ""); err != nil {
		fmt.Println("[schema DEBUG] Compile() failed: " + err.Error())
		return nil, err
	}

	return root, nil
}

// compileChild compiles a nested schema document (a subschema value) and
// registers it in the shared refMap at path.
func compileChild(root *Schema, document json.RawMessage, path string) (*Schema, error) {
	node := &Schema{version: root.version, root: root}
	if err := compileNode(root, node, document, path); err != nil {
		return nil, err
	}
	return node, nil
}

func compileNode(root, node *Schema, document json.RawMessage, path string) error {
	node.path = path
	root.refMap[path] = node

	var boolLiteral bool
	if err := json.Unmarshal(document, &boolLiteral); err == nil {
		node.boolValue = &boolLiteral
		return nil
	}

	var raw rawSchema
	if err := json.Unmarshal(document, &raw); err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}

	if raw.Schema != "" {
		version, ok := versionFromSchemaURI(raw.Schema)
		if !ok {
			return &CompilationError{Path: path, Reason: "unsupported $schema " + raw.Schema}
		}
		node.version = version
	}

	if raw.Id != "" {
		node.id = raw.Id
		root.refMap[raw.Id] = node
	}

	if raw.Ref != "" {
		node.ref = raw.Ref
	}

	for name, doc := range raw.Definitions {
		if _, err := compileChild(root, doc, path+"/definitions/"+name); err != nil {
			return err
		}
	}
	for name, doc := range raw.Defs {
		if _, err := compileChild(root, doc, path+"/$defs/"+name); err != nil {
			return err
		}
	}

	typeList, err := parseTypeList(raw.Type)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	node.typeList = typeList

	if len(raw.Const) > 0 {
		node.hasConst = true
		if err := json.Unmarshal(raw.Const, &node.constValue); err != nil {
			return &CompilationError{Path: path, Reason: "invalid const: " + err.Error()}
		}
	}
	node.enumValues = raw.Enum

	node.maximum = raw.Maximum
	node.minimum = raw.Minimum
	node.multipleOf = raw.MultipleOf

	exclusiveMax, err := normalizeExclusiveMaximum(raw.ExclusiveMaximum, node.version, raw.Maximum)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	node.exclusiveMaximum = exclusiveMax

	exclusiveMin, err := normalizeExclusiveMinimum(raw.ExclusiveMinimum, node.version, raw.Minimum)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	node.exclusiveMinimum = exclusiveMin

	node.minLength = raw.MinLength
	node.maxLength = raw.MaxLength
	if raw.Pattern != "" {
		compiled, err := regexp.Compile(raw.Pattern)
		if err != nil {
			return &CompilationError{Path: path, Reason: errors.Wrap(err, "invalid pattern").Error()}
		}
		node.pattern = compiled
	}

	single, list, err := parseItemsShape(raw.Items)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	if single != nil {
		child, err := compileChild(root, single, path+"/items")
		if err != nil {
			return err
		}
		node.items = child
	}
	for i, itemDoc := range list {
		child, err := compileChild(root, itemDoc, fmt.Sprintf("%s/items/%d", path, i))
		if err != nil {
			return err
		}
		node.itemsList = append(node.itemsList, child)
	}

	addlItemsSchema, addlItemsBool, err := parseSchemaOrBool(raw.AdditionalItems)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	if addlItemsSchema != nil {
		child, err := compileChild(root, addlItemsSchema, path+"/additionalItems")
		if err != nil {
			return err
		}
		node.additionalItemsSchema = child
	}
	node.additionalItemsBool = addlItemsBool

	node.minItems = raw.MinItems
	node.maxItems = raw.MaxItems
	node.uniqueItems = raw.UniqueItems

	if len(raw.Contains) > 0 {
		child, err := compileChild(root, raw.Contains, path+"/contains")
		if err != nil {
			return err
		}
		node.contains = child
	}

	if len(raw.Properties) > 0 {
		node.properties = make(map[string]*Schema, len(raw.Properties))
		for name, doc := range raw.Properties {
			child, err := compileChild(root, doc, path+"/properties/"+name)
			if err != nil {
				return err
			}
			node.properties[name] = child
		}
	}

	for pattern, doc := range raw.PatternProperties {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return &CompilationError{Path: path, Reason: errors.Wrap(err, "invalid patternProperties key").Error()}
		}
		child, err := compileChild(root, doc, path+"/patternProperties/"+pattern)
		if err != nil {
			return err
		}
		node.patternProperties = append(node.patternProperties, patternPropertyEntry{pattern: compiled, schema: child})
	}

	addlPropsSchema, addlPropsBool, err := parseSchemaOrBool(raw.AdditionalProperties)
	if err != nil {
		return &CompilationError{Path: path, Reason: err.Error()}
	}
	if addlPropsSchema != nil {
		child, err := compileChild(root, addlPropsSchema, path+"/additionalProperties")
		if err != nil {
			return err
		}
		node.additionalPropertiesSchema = child
	}
	node.additionalPropertiesBool = addlPropsBool

	if len(raw.PropertyNames) > 0 {
		child, err := compileChild(root, raw.PropertyNames, path+"/propertyNames")
		if err != nil {
			return err
		}
		node.propertyNamesSchema = child
	}

	node.minProperties = raw.MinProperties
	node.maxProperties = raw.MaxProperties
	node.requiredProperties = raw.Required

	for name, doc := range raw.Dependencies {
		names, schemaDoc, err := parseDependencyValue(doc)
		if err != nil {
			return &CompilationError{Path: path, Reason: err.Error()}
		}
		if schemaDoc != nil {
			if node.schemaDependencies == nil {
				node.schemaDependencies = make(map[string]*Schema)
			}
			child, err := compileChild(root, schemaDoc, path+"/dependencies/"+name)
			if err != nil {
				return err
			}
			node.schemaDependencies[name] = child
			continue
		}
		if node.propertyDependencies == nil {
			node.propertyDependencies = make(map[string][]string)
		}
		node.propertyDependencies[name] = names
	}

	for i, doc := range raw.AllOf {
		child, err := compileChild(root, doc, fmt.Sprintf("%s/allOf/%d", path, i))
		if err != nil {
			return err
		}
		node.allOf = append(node.allOf, child)
	}
	for i, doc := range raw.AnyOf {
		child, err := compileChild(root, doc, fmt.Sprintf("%s/anyOf/%d", path, i))
		if err != nil {
			return err
		}
		node.anyOf = append(node.anyOf, child)
	}
	for i, doc := range raw.OneOf {
		child, err := compileChild(root, doc, fmt.Sprintf("%s/oneOf/%d", path, i))
		if err != nil {
			return err
		}
		node.oneOf = append(node.oneOf, child)
	}
	if len(raw.Not) > 0 {
		child, err := compileChild(root, raw.Not, path+"/not")
		if err != nil {
			return err
		}
		node.notSchema = child
	}

	node.format = raw.Format
	node.formatMinimum = raw.FormatMinimum
	node.formatMaximum = raw.FormatMaximum
	node.formatExclusiveMinimum = raw.FormatExclusiveMinimum
	node.formatExclusiveMaximum = raw.FormatExclusiveMaximum

	return nil
}
