package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Request body shapes. They check JSON types only; required fields and
// blank names are checked by the models so the error text stays stable.
var (
	createProjectSchema = mustCompileSchema("schemas/create_project.json")
	createTaskSchema    = mustCompileSchema("schemas/create_task.json")
	updateTaskSchema    = mustCompileSchema("schemas/update_task.json")
)

// BodyError is a request body that is not valid JSON or has the wrong shape.
type BodyError struct {
	Field   string
	Message string
}

func (e *BodyError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func mustCompileSchema(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// decodeBody validates raw against schema and decodes it into dst.
// An empty body is treated as an empty object.
func decodeBody(raw []byte, schema *jsonschema.Schema, dst interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &BodyError{Message: "invalid JSON body"}
	}

	if err := schema.Validate(doc); err != nil {
		return schemaError(err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &BodyError{Message: err.Error()}
	}
	return nil
}

// schemaError reduces a validation error tree to its first leaf.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &BodyError{Message: err.Error()}
	}

	leaf := firstLeaf(ve)
	return &BodyError{
		Field:   strings.TrimPrefix(leaf.InstanceLocation, "/"),
		Message: leaf.Message,
	}
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
