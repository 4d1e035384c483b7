package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/pipeline"
	"github.com/gaurav-prasanna/postfmt/core/style"
)

func prepare(opts pipeline.Options, maxChars int) http.Handler {
	return New(pipeline.New(opts), maxChars, nil).Router()
}

func post(t *testing.T, h http.Handler, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/format", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestFormat_OK(t *testing.T) {
	h := prepare(pipeline.Options{}, 0)
	status, body := post(t, h, `{"text": "<b>Hi</b> _there_"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, style.Apply(style.Bold, "Hi")+" "+style.Apply(style.Italic, "there"), body["text"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "parts")
}

func TestFormat_Empty(t *testing.T) {
	status, body := post(t, prepare(pipeline.Options{}, 0), `{"text": ""}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", body["text"])
}

func TestFormat_UnbalancedIs200(t *testing.T) {
	status, body := post(t, prepare(pipeline.Options{}, 0), `{"text": "*a*b*"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Unmatched formatting markers found", body["error"])
	assert.NotContains(t, body, "text")
}

func TestFormat_LenientPolicy(t *testing.T) {
	status, body := post(t, prepare(pipeline.Options{Policy: core.PolicyLenient}, 0), `{"text": "*a*b*"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, style.Apply(style.Bold, "a")+"b*", body["text"])
}

type panicConverter struct{}

func (panicConverter) Convert(string) string { panic("boom") }

func TestFormat_InternalIs500(t *testing.T) {
	status, body := post(t, prepare(pipeline.Options{Converter: panicConverter{}}, 0), `{"text": "hello"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "An error occurred while formatting the text", body["error"])
}

func TestFormat_BadBody(t *testing.T) {
	status, body := post(t, prepare(pipeline.Options{}, 0), `{"text": `)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestFormat_Split(t *testing.T) {
	h := prepare(pipeline.Options{}, 8)

	status, body := post(t, h, `{"text": "<p>one two</p><p>three</p>"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"one two", "three"}, body["parts"])

	// A request limit overrides the server default.
	status, body = post(t, h, `{"text": "<p>one two</p><p>three</p>", "max_chars": 0}`)
	assert.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "parts")

	status, _ = post(t, h, `{"text": "x", "max_chars": -1}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	prepare(pipeline.Options{}, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
