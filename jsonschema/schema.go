package jsonschema

// Schema is a minimal JSON Schema representation used to describe the
// message wire format.
type Schema struct {
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`

	// Core
	Type string `json:"type,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// Draft is the JSON Schema dialect emitted by this package.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// DefRef returns the $ref pointer for a named definition.
func DefRef(name string) string { return "#/$defs/" + name }
