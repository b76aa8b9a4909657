package spec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// SchemaJSON returns the JSON Schema that YAML and JSON documents are checked
// against.
func SchemaJSON() string {
	return schemaJSON
}

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

func documentSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("spec.schema.json", strings.NewReader(schemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("invalid schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile("spec.schema.json")
	})
	return compiledSchema, compiledSchemaErr
}

// SchemaErrors lists every schema violation found in a document.
type SchemaErrors []error

func (se SchemaErrors) Error() string {
	if len(se) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("spec document does not match schema: ")
	for i, err := range se {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// validateSchema checks a JSON document against the embedded schema.
func validateSchema(doc []byte) error {
	schema, err := documentSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return extractSchemaErrors(verr)
		}
		return SchemaErrors{err}
	}
	return nil
}

// extractSchemaErrors flattens the leaves of a validation error tree.
func extractSchemaErrors(err *jsonschema.ValidationError) SchemaErrors {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return SchemaErrors{fmt.Errorf("at %s: %s", location, err.Message)}
	}

	var errs SchemaErrors
	for _, cause := range err.Causes {
		errs = append(errs, extractSchemaErrors(cause)...)
	}
	return errs
}
