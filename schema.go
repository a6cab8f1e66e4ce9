package chatcard

import (
	js "github.com/reoring/chatcard/jsonschema"
)

// FieldKind classifies a wire field.
type FieldKind uint8

const (
	KindString FieldKind = iota // JSON string.
	KindObject                  // Nested entity.
	KindArray                   // Array of nested entities.
)

// FieldInfo describes one wire field of an entity.
type FieldInfo struct {
	Name     string    // lowerCamelCase wire name.
	Kind     FieldKind
	Entity   string    // Nested entity name for KindObject and KindArray.
	Required bool
}

func str(name string) FieldInfo           { return FieldInfo{Name: name, Kind: KindString} }
func obj(name, entity string) FieldInfo   { return FieldInfo{Name: name, Kind: KindObject, Entity: entity} }
func array(name, entity string) FieldInfo { return FieldInfo{Name: name, Kind: KindArray, Entity: entity} }

func required(f FieldInfo) FieldInfo {
	f.Required = true
	return f
}

// entityOrder lists entities root first.
var entityOrder = []string{
	"Text", "Cards", "Card", "Header", "Section", "Widget", "TextParagraph",
	"KeyValue", "Image", "Button", "TextButton", "ImageButton", "OnClick", "OpenLink",
}

// entityFields mirrors the declared field order used when encoding.
var entityFields = map[string][]FieldInfo{
	"Text":          {required(str("text"))},
	"Cards":         {required(array("cards", "Card"))},
	"Card":          {obj("header", "Header"), array("sections", "Section")},
	"Header":        {str("title"), str("subtitle"), str("imageUrl"), str("imageStyle")},
	"Section":       {str("header"), array("widgets", "Widget")},
	"Widget":        {obj("textParagraph", "TextParagraph"), obj("keyValue", "KeyValue"), obj("image", "Image"), array("buttons", "Button")},
	"TextParagraph": {required(str("text"))},
	"KeyValue": {
		str("topLabel"), str("content"), str("icon"), str("contentMultiline"), str("bottomLabel"),
		obj("onClick", "OnClick"), obj("button", "Button"),
	},
	"Image":       {str("imageUrl"), obj("onClick", "OnClick")},
	"Button":      {obj("textButton", "TextButton"), obj("imageButton", "ImageButton")},
	"TextButton":  {str("text"), obj("onClick", "OnClick")},
	"ImageButton": {str("iconUrl"), str("icon"), obj("onClick", "OnClick")},
	"OnClick":     {required(obj("openLink", "OpenLink"))},
	"OpenLink":    {required(str("url"))},
}

// EntityNames returns every entity name, root first.
func EntityNames() []string { return cloneSlice(entityOrder) }

// EntityFields returns the wire fields of the named entity in declared order.
func EntityFields(entity string) ([]FieldInfo, bool) {
	fs, ok := entityFields[entity]
	if !ok {
		return nil, false
	}
	return cloneSlice(fs), true
}

// SchemaFor projects one entity into a JSON Schema object. Nested entities
// are referenced through $defs.
func SchemaFor(entity string) (*js.Schema, bool) {
	fs, ok := entityFields[entity]
	if !ok {
		return nil, false
	}
	closed := false
	s := &js.Schema{
		Title:                entity,
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(fs)),
		AdditionalProperties: &closed,
	}
	for _, f := range fs {
		var p *js.Schema
		switch f.Kind {
		case KindString:
			p = &js.Schema{Type: "string"}
		case KindObject:
			p = &js.Schema{Ref: js.DefRef(f.Entity)}
		case KindArray:
			p = &js.Schema{Type: "array", Items: &js.Schema{Ref: js.DefRef(f.Entity)}}
		}
		s.Properties[f.Name] = p
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, true
}

// MessageSchema describes a complete webhook body: one of the Text or Cards
// variants, with every entity under $defs.
func MessageSchema() *js.Schema {
	defs := make(map[string]*js.Schema, len(entityOrder))
	for _, name := range entityOrder {
		defs[name], _ = SchemaFor(name)
	}
	return &js.Schema{
		Schema:      js.Draft,
		Title:       "Message",
		Description: "Chat webhook message body",
		OneOf:       []*js.Schema{{Ref: js.DefRef("Text")}, {Ref: js.DefRef("Cards")}},
		Defs:        defs,
	}
}
