package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGetContextPrompt(t *testing.T) {
	assert.Equal(t, "No health record is available for this user.", GetContextPrompt("  "))
	assert.Equal(t, "Health record (JSON):\n{\"a\":1}", GetContextPrompt(`{"a":1}`))

	long := strings.Repeat("x", maxContextBytes+10)
	out := GetContextPrompt(long)
	assert.True(t, strings.HasSuffix(out, "(truncated)"))
	assert.Less(t, len(out), len(long)+50)

	multibyte := strings.Repeat("x", maxContextBytes-1) + strings.Repeat("é", 10)
	out = GetContextPrompt(multibyte)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("x", maxContextBytes-1)+"…(truncated)")
}

func TestGetSystemPrompt(t *testing.T) {
	assert.Contains(t, GetSystemPrompt(), "health assistant")
	assert.Equal(t, GetSystemPrompt(), GetAssistantInstructions())
}
