package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/tagly/format"
)

// ToolInputSchemaProperties maps a property name to its JSON schema.
type ToolInputSchemaProperties map[string]map[string]interface{}

// ToolInputSchema is the JSON schema advertised for tool arguments.
type ToolInputSchema struct {
	Type       string                    `json:"type"`
	Properties ToolInputSchemaProperties `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

// schemaForTypeInternal returns a JSON schema representation for a given reflect.Type.
// The inSlice flag is used to determine if we are processing an element inside a slice.
func schemaForTypeInternal(t reflect.Type, inSlice bool) map[string]interface{} {
	schema := make(map[string]interface{})

	if t == reflect.TypeOf(time.Time{}) {
		schema["type"] = "string"
		schema["format"] = "date-time"
		return schema
	}

	if t.Kind() == reflect.Ptr {
		schema = schemaForTypeInternal(t.Elem(), inSlice)
		if !inSlice {
			schema["nullable"] = true
		}
		return schema
	}

	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		schema["items"] = schemaForTypeInternal(t.Elem(), true)
	case reflect.Map:
		schema["type"] = "object"
		if t.Elem().Kind() != reflect.Interface {
			schema["additionalProperties"] = schemaForTypeInternal(t.Elem(), false)
		}
	case reflect.Struct:
		schema["type"] = "object"
		properties, required := structToProperties(t)
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	default:
		schema["type"] = "string"
	}
	return schema
}

func schemaForType(t reflect.Type) map[string]interface{} {
	return schemaForTypeInternal(t, false)
}

// structToProperties converts a struct type into input schema properties and required fields.
// Fields tagged omitempty, or declared as pointers, are optional.
func structToProperties(t reflect.Type) (ToolInputSchemaProperties, []string) {
	properties := make(ToolInputSchemaProperties)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, _ := format.Parse(field.Tag, "json", "format")
		if tag == nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}

		fieldName := field.Name
		if tag.Name != "" {
			fieldName = tag.Name
		}

		fieldSchema := schemaForType(field.Type)
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}
		properties[fieldName] = fieldSchema
		if field.Type.Kind() != reflect.Ptr && !tag.Omitempty {
			required = append(required, fieldName)
		}
	}
	return properties, required
}

// Load derives the schema from a struct (or pointer to struct) value.
func (s *ToolInputSchema) Load(v any) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return fmt.Errorf("expected a struct type, got nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	properties, required := structToProperties(t)
	s.Properties = properties
	s.Required = required
	s.Type = "object"
	return nil
}
