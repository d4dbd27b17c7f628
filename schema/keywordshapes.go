package schema

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

func versionFromSchemaURI(uri string) (Version, bool) {
	switch {
	case strings.Contains(uri, "draft-04"):
		return Draft04, true
	case strings.Contains(uri, "draft-06"):
		return Draft06, true
	default:
		return "", false
	}
}

// normalizeExclusiveMaximum resolves "exclusiveMaximum"'s draft-dependent
// shape: draft-04 pairs a boolean with "maximum"; draft-06 supplies the
// bound directly as a number.
func normalizeExclusiveMaximum(raw json.RawMessage, version Version, maximum *float64) (*float64, error) {
	return normalizeExclusiveBound(raw, version, maximum)
}

// normalizeExclusiveMinimum is the minimum-side counterpart.
func normalizeExclusiveMinimum(raw json.RawMessage, version Version, minimum *float64) (*float64, error) {
	return normalizeExclusiveBound(raw, version, minimum)
}

func normalizeExclusiveBound(raw json.RawMessage, version Version, pairedBound *float64) (*float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	if version == Draft04 {
		var flag bool
		if err := json.Unmarshal(raw, &flag); err != nil {
			return nil, errors.Wrap(err, "draft-04 exclusive bound must be a boolean")
		}
		if !flag || pairedBound == nil {
			return nil, nil
		}
		value := *pairedBound
		return &value, nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errors.Wrap(err, "draft-06 exclusive bound must be a number")
	}
	return &value, nil
}

// parseTypeList accepts "type"'s two legal shapes: a single string or an
// array of strings.
func parseTypeList(raw json.RawMessage) (map[string]struct{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return map[string]struct{}{single: {}}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.Wrap(err, "\"type\" must be a string or array of strings")
	}
	set := make(map[string]struct{}, len(list))
	for _, t := range list {
		set[t] = struct{}{}
	}
	return set, nil
}

// parseItemsShape splits "items"'s two legal shapes: a single subschema
// (applied to every element) XOR a positional list of subschemas.
func parseItemsShape(raw json.RawMessage) (single json.RawMessage, list []json.RawMessage, err error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		return nil, asList, nil
	}
	return raw, nil, nil
}

// parseSchemaOrBool splits keywords that are either a subschema or a plain
// boolean ("additionalItems", "additionalProperties").
func parseSchemaOrBool(raw json.RawMessage) (schemaRaw json.RawMessage, boolValue *bool, err error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return nil, &b, nil
	}
	return raw, nil, nil
}

// parseDependencyValue splits a "dependencies" entry into its two legal
// shapes: a list of required peer property names, or a subschema the whole
// instance must validate against.
func parseDependencyValue(raw json.RawMessage) (names []string, schemaRaw json.RawMessage, err error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil, nil
	}
	return nil, raw, nil
}

func endPath(ref string) string {
	if idx := strings.Index(ref, "#"); idx >= 0 {
		return strings.TrimPrefix(ref[idx:], "#")
	}
	return ref
}
