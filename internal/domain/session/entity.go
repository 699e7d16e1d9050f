package session

import (
	"time"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxHistory bounds the turns kept per session.
const MaxHistory = 50

type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Session is the per-conversation state: the most recently supplied dataset
// and the exchanged turns.
type Session struct {
	ID        string
	Dataset   *health.Dataset
	History   []Turn
	UpdatedAt time.Time
}

// Append adds turns and drops the oldest beyond MaxHistory.
func (s *Session) Append(turns ...Turn) {
	s.History = append(s.History, turns...)
	if n := len(s.History); n > MaxHistory {
		s.History = append([]Turn(nil), s.History[n-MaxHistory:]...)
	}
}

// Clone returns a copy whose history can be modified independently.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.History = append([]Turn(nil), s.History...)
	return &c
}
