package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

var ErrJSONNotFound = errors.New("no json object found in text")

// Object is a decoded JSON object of unknown shape.
type Object map[string]any

// ExtractJSONObject decodes the span between the first '{' and the last '}'
// of text. Any text before or after the span is ignored.
func ExtractJSONObject(text string) (Object, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return nil, ErrJSONNotFound
	}

	var obj Object
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONNotFound, err)
	}
	if obj == nil {
		return nil, ErrJSONNotFound
	}
	return obj, nil
}

// Decode re-reads the object into a typed record.
func (o Object) Decode(v any) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode object: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	return nil
}
