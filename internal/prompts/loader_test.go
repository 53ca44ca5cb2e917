package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("optimization.json", "optimize-bullet-intro")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "resume bullet")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("optimization.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("optimization.json", "nonexistent-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Rewrite {{.BulletText}} in at most {{.MaxChars}} characters"
	result := Format(template, map[string]string{
		"BulletText": "shipped the thing",
		"MaxChars":   "120",
	})
	assert.Equal(t, "Rewrite shipped the thing in at most 120 characters", result)
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("optimization.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "optimize-bullet-intro")
	assert.Contains(t, keys, "optimize-bullet-requirements")
}
