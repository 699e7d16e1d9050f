package agent

import "errors"

var (
	// ErrNotConfigured indicates no platform credentials were supplied.
	ErrNotConfigured = errors.New("agent platform not configured")
	// ErrEmptyReply indicates the platform answered without any text.
	ErrEmptyReply = errors.New("agent returned empty reply")
	// ErrQuotaExceeded indicates the provider returned a quota/limit error (HTTP 429 or similar).
	ErrQuotaExceeded = errors.New("agent quota exceeded")
)
