package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	poSchemaOnce sync.Once
	poSchema     *jsonschema.Schema
	poSchemaErr  error
)

func compiledPOSchema() (*jsonschema.Schema, error) {
	poSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildPODocumentJSONSchema())
		if err != nil {
			poSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("po-document.json", bytes.NewReader(b)); err != nil {
			poSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		poSchema, poSchemaErr = compiler.Compile("po-document.json")
	})
	return poSchema, poSchemaErr
}

// ValidatePODocument validates a sanitized model reply against the page-keyed
// document schema. The schema is compiled once and reused across calls.
func ValidatePODocument(data []byte) error {
	schema, err := compiledPOSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
