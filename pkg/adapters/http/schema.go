package http

import (
	"bytes"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const menuSchemaURL = "https://orderbot.local/schemas/menu.json"

// menuSchemaJSON is the contract of the menu endpoint: a JSON array of {id, name}.
const menuSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name"],
    "properties": {
      "id":   { "type": "integer" },
      "name": { "type": "string" }
    }
  }
}`

func compileMenuSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(menuSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("unmarshal menu schema: %w", err)
	}
	if err := c.AddResource(menuSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add menu schema resource: %w", err)
	}
	sch, err := c.Compile(menuSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile menu schema: %w", err)
	}
	return sch, nil
}

// checkMenuBody validates a raw response body against the menu schema.
func checkMenuBody(sch *jsonschema.Schema, body []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("menu body is not JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("menu body does not match schema: %w", err)
	}
	return nil
}
