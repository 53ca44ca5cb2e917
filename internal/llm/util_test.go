package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"text\": \"hello\"}\n```"
	assert.Equal(t, `{"text": "hello"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"text\": \"hello\"}\n```"
	assert.Equal(t, `{"text": "hello"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"text\": \"hello\"}\n```"
	assert.Equal(t, `{"text": "hello"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"text": "hello"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Whitespace(t *testing.T) {
	input := "  \n{\"text\": \"hello\"}\n  "
	assert.Equal(t, `{"text": "hello"}`, CleanJSONBlock(input))
}
