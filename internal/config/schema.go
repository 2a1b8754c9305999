package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/answers.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("answers.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("answers.schema.json")
	})
	return compiledSchema, compileErr
}

// ValidateAnswers checks an answers document (YAML or JSON) against the
// embedded schema. The first offending field is returned as a
// *models.ValidationError.
func ValidateAnswers(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading answers schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing answers: %w", err)
	}
	if raw == nil {
		return nil
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return fmt.Errorf("converting answers to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing answers for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}
	return toValidationError(ve)
}

// toValidationError reports the first leaf of the error tree.
func toValidationError(ve *jsonschema.ValidationError) *models.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	field := strings.Join(ve.InstanceLocation, ".")
	if field == "" {
		field = "answers"
	}

	reason := ve.Error()
	if ve.ErrorKind != nil {
		reason = ve.ErrorKind.LocalizedString(printer)
	}

	return &models.ValidationError{Field: field, Reason: reason}
}

// normalizeYAML converts map[string]interface{} trees produced by yaml.v3
// into values encoding/json accepts.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return v
	}
}
