package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bryanwahyu/health-agent/internal/domain/agent"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	"github.com/bryanwahyu/health-agent/internal/domain/session"
)

// Reason classifies a delegate outcome.
type Reason string

const (
	ReasonOK            Reason = "ok"
	ReasonNotConfigured Reason = "not_configured"
	ReasonUnregistered  Reason = "unregistered"
	ReasonTransport     Reason = "transport"
	ReasonEmpty         Reason = "empty"
)

// Outcome is what the remote agent produced. Text is set only when Reason is
// ReasonOK.
type Outcome struct {
	Text   string
	Reason Reason
	Err    error
}

// Delegate relays messages no local analyzer handles to the external agent
// platform. Every failure is reported as an Outcome; a single attempt is made.
type Delegate struct {
	platform agent.Platform
	profile  agent.AgentProfile
	timeout  time.Duration
	log      *log.Logger

	mu      sync.Mutex
	agentID string
}

// NewDelegate wires a platform. A nil platform yields ReasonNotConfigured for
// every call. An empty agentID triggers one registration on first use.
func NewDelegate(p agent.Platform, agentID string, timeout time.Duration, logger *log.Logger) *Delegate {
	if logger == nil {
		logger = log.Default()
	}
	return &Delegate{
		platform: p,
		profile:  agent.DefaultProfile,
		timeout:  timeout,
		log:      logger,
		agentID:  agentID,
	}
}

// AgentID returns the configured or registered agent id.
func (d *Delegate) AgentID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.agentID
}

func (d *Delegate) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}

// ensureAgent registers the agent once; a failed registration is retried on
// the next message.
func (d *Delegate) ensureAgent(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.agentID != "" {
		return d.agentID, nil
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	id, err := d.platform.Register(ctx, d.profile)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", errors.New("platform returned empty agent id")
	}
	d.agentID = id
	d.log.Info("registered agent", "agent_id", id, "name", d.profile.Name)
	return id, nil
}

// Ask sends message with the serialized dataset as context.
func (d *Delegate) Ask(ctx context.Context, message, sessionID string, ds *health.Dataset) Outcome {
	if d == nil || d.platform == nil {
		return Outcome{Reason: ReasonNotConfigured, Err: agent.ErrNotConfigured}
	}

	agentID, err := d.ensureAgent(ctx)
	if err != nil {
		if errors.Is(err, agent.ErrNotConfigured) {
			return Outcome{Reason: ReasonNotConfigured, Err: err}
		}
		d.log.Error("agent registration failed", "err", err)
		return Outcome{Reason: ReasonUnregistered, Err: err}
	}

	meta := map[string]string{}
	if ds != nil {
		if b, err := json.Marshal(ds); err == nil {
			meta["health_data"] = string(b)
		}
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	text, err := d.platform.SendMessage(ctx, agent.Message{
		AgentID:   agentID,
		Content:   message,
		SessionID: sessionID,
		Metadata:  meta,
	})
	switch {
	case errors.Is(err, agent.ErrNotConfigured):
		return Outcome{Reason: ReasonNotConfigured, Err: err}
	case errors.Is(err, agent.ErrEmptyReply):
		return Outcome{Reason: ReasonEmpty, Err: err}
	case err != nil:
		d.log.Error("agent send failed", "session_id", sessionID, "err", err)
		return Outcome{Reason: ReasonTransport, Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Outcome{Reason: ReasonEmpty, Err: agent.ErrEmptyReply}
	}
	return Outcome{Text: text, Reason: ReasonOK}
}

// closing phrases matched against whole words of recent user turns.
var closingPhrases = []string{"goodbye", "bye", "thanks", "thank you", "that's all", "see you"}

const endedWindow = 10

// ChatEnded reports whether one of the last user turns reads like a goodbye.
func ChatEnded(history []session.Turn) bool {
	start := len(history) - endedWindow
	if start < 0 {
		start = 0
	}
	for _, t := range history[start:] {
		if t.Role != session.RoleUser {
			continue
		}
		padded := " " + normalizeWords(t.Content) + " "
		for _, p := range closingPhrases {
			if strings.Contains(padded, " "+p+" ") {
				return true
			}
		}
	}
	return false
}

// normalizeWords lower-cases s and collapses everything but letters and
// apostrophes into single spaces.
func normalizeWords(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '\''
	})
	return strings.Join(fields, " ")
}
