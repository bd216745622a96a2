package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var schemaJSON string

var schema = gojsonschema.NewStringLoader(schemaJSON)

// ValidatePayload checks raw JSON against the document schema and decodes it.
// Used at the import boundary only; records loaded from the store are trusted
// verbatim and defaulted through Normalize.
func ValidatePayload(raw []byte) (*Document, error) {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing document payload: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document payload: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}
