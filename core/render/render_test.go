package render

import (
	"errors"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postfmt/core"
)

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer()

	out, err := r.Render(core.Result{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	out, err = r.Render(core.Result{Text: "a b", Parts: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "a\n\n---\n\nb\n", string(out))

	_, err = r.Render(core.Result{Err: core.Unbalanced(1, 0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnbalancedMarkers))
	assert.Equal(t, ".txt", r.Extension())
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()

	out, err := r.Render(core.Result{Text: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": ""}`, string(out))

	out, err = r.Render(core.Result{Text: "a b", Parts: []string{"a", "b"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "a b", "parts": ["a", "b"]}`, string(out))

	out, err = r.Render(core.Result{Err: core.Unbalanced(3, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Unmatched formatting markers found"}`, string(out))
	assert.Equal(t, ".json", r.Extension())
}

func TestJSONRenderer_HidesInternalDetail(t *testing.T) {
	out, err := NewJSONRenderer().Render(core.Result{Err: core.Internal(errors.New("db password wrong"))})
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, jsoniter.Unmarshal(out, &body))
	assert.Equal(t, "An error occurred while formatting the text", body["error"])
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "An error occurred while formatting the text", Message(errors.New("x")))
}
