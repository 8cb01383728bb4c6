package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaRegistry compiles schema definitions once and caches them by
// name. Schemas in this codebase are static package-level values, so a
// name uniquely identifies a definition.
type schemaRegistry struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaRegistry{compiled: make(map[string]*jsonschema.Schema)}

// validateResponse checks raw JSON against the request schema. Nil
// schema always passes. Failures come back as *ErrInvalidResponse with
// the offending content attached.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not valid JSON: %w", err)}
	}

	compiled, err := schemas.get(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation: %w", err)}
	}
	return nil
}

func (r *schemaRegistry) get(schema *Schema) (*jsonschema.Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.compiled[schema.Name]; ok {
		return c, nil
	}

	// The compiler wants a parsed JSON value, so round-trip the
	// definition map through encoding/json.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	r.compiled[schema.Name] = compiled
	return compiled, nil
}
