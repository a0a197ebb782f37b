package api

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// listResponseSchema is the contract the client holds the endpoint to before
// committing a result set. Kept intentionally loose on player fields; the
// pagination envelope is what the orchestrator depends on.
const listResponseSchema = `{
	"type": "object",
	"required": ["players", "count", "total", "page", "limit", "total_pages"],
	"properties": {
		"players":     {"type": "array", "items": {"type": "object"}},
		"count":       {"type": "integer", "minimum": 0},
		"total":       {"type": "integer", "minimum": 0},
		"page":        {"type": "integer", "minimum": 1},
		"limit":       {"type": "integer", "minimum": 1},
		"total_pages": {"type": "integer", "minimum": 0}
	}
}`

var listResponseLoader = gojsonschema.NewStringLoader(listResponseSchema)

// validateListResponse checks raw against the list response schema and
// returns a joined description of every violation, or "" when valid.
func validateListResponse(raw []byte) string {
	result, err := gojsonschema.Validate(listResponseLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err.Error()
	}
	if result.Valid() {
		return ""
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return strings.Join(msgs, "; ")
}
