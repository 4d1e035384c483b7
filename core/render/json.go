// Package render — JSON renderer.
// Produces the same JSON contract the HTTP endpoint serves:
// {"text": "..."} on success, {"error": "..."} on failure.
package render

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/gaurav-prasanna/postfmt/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONRenderer produces the JSON response body for a Result.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render encodes res. A failed result is encoded, not returned as an
// error, so callers always get a body they can show.
func (r *JSONRenderer) Render(res core.Result) ([]byte, error) {
	data, err := json.MarshalIndent(Body(res), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Body builds the response object for res. Only the user-facing message
// of an error is exposed.
func Body(res core.Result) map[string]any {
	if res.Err != nil {
		return map[string]any{"error": Message(res.Err)}
	}
	body := map[string]any{"text": res.Text}
	if len(res.Parts) > 0 {
		body["parts"] = res.Parts
	}
	return body
}

// Message returns the text a caller may see for err.
func Message(err error) string {
	var fe *core.FormatError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	return core.ErrInternal.UserMessage()
}
