package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json code block", "```json\n{\"questions\": []}\n```", `{"questions": []}`},
		{"generic code block", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"code block with language", "```javascript\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"plain JSON", `{"key": "value"}`, `{"key": "value"}`},
		{"preamble before object", "Here are the questions:\n{\"questions\": [{\"id\": \"intro_1\"}]}", `{"questions": [{"id": "intro_1"}]}`},
		{"preamble before array", "Items:\n[\"a\", \"b\"]", `["a", "b"]`},
		{"trailing text", "{\"key\": \"value\"}\n\nGood luck with the interview!", `{"key": "value"}`},
		{"braces inside strings", `Result: {"question": "What does {x} mean?"}`, `{"question": "What does {x} mean?"}`},
		{"escaped quotes", `{"q": "He said \"hi\" {"}`, `{"q": "He said \"hi\" {"}`},
		{"unbalanced left alone", `{"key": "value"`, `{"key": "value"`},
		{"no JSON", "not json", "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	assert.Equal(t, `[[1, 2], [3]]`, extractBalanced(`[[1, 2], [3]] tail`, '[', ']'))
	assert.Equal(t, "", extractBalanced("x{}", '{', '}'))
	assert.Equal(t, "", extractBalanced("", '{', '}'))
}
