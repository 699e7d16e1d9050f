package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxContextBytes caps the health data pasted into a prompt.
const maxContextBytes = 16 << 10

// GetSystemPrompt sets the assistant's role for free-form health questions.
func GetSystemPrompt() string {
	return `You are a personal health assistant. You answer questions about the user's own health record, which is supplied as JSON in the conversation.

Rules:
- Base every statement on the supplied record; say so when the record does not contain the answer.
- Quote values with their units and the status recorded next to them. Do not re-classify values.
- Keep answers short and in plain language, without markdown tables.
- You are not a doctor. Suggest consulting a healthcare provider for anything that needs diagnosis or treatment.`
}

// GetAssistantInstructions is stored with the registered assistant.
func GetAssistantInstructions() string {
	return GetSystemPrompt()
}

// GetContextPrompt wraps the serialized health record. Oversized records are
// truncated on a rune boundary.
func GetContextPrompt(healthData string) string {
	healthData = strings.TrimSpace(healthData)
	if healthData == "" {
		return "No health record is available for this user."
	}
	if len(healthData) > maxContextBytes {
		cut := maxContextBytes
		for cut > 0 && !utf8.RuneStart(healthData[cut]) {
			cut--
		}
		healthData = healthData[:cut] + "…(truncated)"
	}
	return fmt.Sprintf("Health record (JSON):\n%s", healthData)
}

// GetUserPrompt returns the user's message as sent.
func GetUserPrompt(message string) string {
	return strings.TrimSpace(message)
}
