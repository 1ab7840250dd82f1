package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	fieldIDExtensionKey   = "x-field-id"
	fieldTypeExtensionKey = "x-field-type"
)

// FromOpenAPI derives a field catalogue from the properties of a component
// schema in an OpenAPI 3 document. Properties are returned sorted by name.
func FromOpenAPI(ctx context.Context, data []byte, schemaName string) ([]Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("catalog openapi: document payload is empty")
	}
	name := strings.TrimSpace(schemaName)
	if name == "" {
		return nil, errors.New("catalog openapi: schema name is required")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("catalog openapi: load document: %w", err)
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, fmt.Errorf("catalog openapi: schema %q not found", name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("catalog openapi: schema %q not found", name)
	}

	props := ref.Value.Properties
	names := make([]string, 0, len(props))
	for prop := range props {
		names = append(names, prop)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, prop := range names {
		propRef := props[prop]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		fields = append(fields, fieldFromSchema(prop, propRef.Value))
	}
	return fields, nil
}

func fieldFromSchema(prop string, schema *openapi3.Schema) Field {
	field := Field{
		ID:   prop,
		Name: prop,
		Type: TypeSingleLineText,
	}
	if id := stringExtension(schema.Extensions, fieldIDExtensionKey); id != "" {
		field.ID = id
	}
	if title := strings.TrimSpace(schema.Title); title != "" {
		field.Name = title
	}

	switch {
	case schema.Type.Is(openapi3.TypeArray):
		items := itemSchema(schema)
		switch {
		case items != nil && len(items.Enum) > 0:
			field.Type = TypeMultipleSelects
			field.Options = stringifyEnum(items.Enum)
		case items != nil && items.Format == "binary":
			field.Type = TypeMultipleAttachments
		default:
			field.Type = TypeMultipleSelects
		}
	case len(schema.Enum) > 0:
		field.Type = TypeSingleSelect
		field.Options = stringifyEnum(schema.Enum)
	case schema.Format == "textarea":
		field.Type = TypeMultilineText
	}

	if override := stringExtension(schema.Extensions, fieldTypeExtensionKey); override != "" {
		field.Type = override
	}
	return field
}

func itemSchema(schema *openapi3.Schema) *openapi3.Schema {
	if schema.Items == nil {
		return nil
	}
	return schema.Items.Value
}

func stringifyEnum(values []any) Choices {
	out := make(Choices, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func stringExtension(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	switch v := ext[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
