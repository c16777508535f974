package vocab

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://vocabulary.json"

// fileSchema describes one category file: an array of word objects with
// non-empty "de" and "en" fields and optional string extras.
const fileSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "de":          {"type": "string", "minLength": 1},
      "en":          {"type": "string", "minLength": 1},
      "hint":        {"type": "string"},
      "example":     {"type": "string"},
      "conjugation": {"type": "string"},
      "opposite":    {"type": "string"},
      "context":     {"type": "string"}
    },
    "required": ["de", "en"]
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func vocabularySchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(fileSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse vocabulary schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add vocabulary schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks the raw bytes of a category file against the vocabulary
// schema.
func Validate(raw []byte) error {
	sch, err := vocabularySchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid vocabulary file: %w", err)
	}
	return nil
}
