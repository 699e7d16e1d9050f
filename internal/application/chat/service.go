package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bryanwahyu/health-agent/internal/application"
	"github.com/bryanwahyu/health-agent/internal/application/analysis"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	"github.com/bryanwahyu/health-agent/internal/domain/session"
)

// ErrEmptyMessage is returned for a blank message; it never reaches the router.
var ErrEmptyMessage = errors.New("message is required")

// DefaultReply is the static answer when neither an analyzer nor the
// external agent produced one.
const DefaultReply = "I'm your Health AI Assistant. I can help analyze your blood tests, vital signs, " +
	"and provide health recommendations. What would you like to know about your health?"

// Source tells where a reply came from.
type Source string

const (
	SourceLocal    Source = "local"
	SourceDelegate Source = "delegate"
	SourceDefault  Source = "default"
)

// Recorder receives chat counters. A nil Recorder is allowed.
type Recorder interface {
	ObserveIntent(intent string)
	ObserveReply(source string)
	ObserveAgentOutcome(reason string)
}

// Service implements the chat use-case.
// Service is designed to be used concurrently and is thread-safe
type Service struct {
	Sessions session.Store
	Delegate *Delegate
	Clock    application.Clock
	Metrics  Recorder
	Log      *log.Logger
}

//
// ==== USE CASES ====
//

type ProcessInput struct {
	Message   string
	SessionID string
	// Dataset is the caller's freshly loaded record; nil reuses the one
	// last stored for the session.
	Dataset *health.Dataset
}

type Reply struct {
	Text   string
	Intent Intent
	Source Source
	Ended  bool
}

// Process answers a single message for a session.
func (s *Service) Process(ctx context.Context, in ProcessInput) (Reply, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return Reply{}, ErrEmptyMessage
	}
	if in.SessionID == "" {
		return Reply{}, errors.New("session id is required")
	}

	sess, ok, err := s.Sessions.Get(ctx, in.SessionID)
	if err != nil {
		return Reply{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		sess = &session.Session{ID: in.SessionID}
	}
	if in.Dataset != nil {
		sess.Dataset = in.Dataset
	}
	ds := sess.Dataset
	if ds == nil {
		ds = &health.Dataset{}
	}

	intent := Route(msg)
	s.observeIntent(intent)

	reply := Reply{Intent: intent, Source: SourceLocal}
	if text, handled := render(intent, ds); handled {
		reply.Text = text
	} else {
		out := s.Delegate.Ask(ctx, msg, in.SessionID, ds)
		s.observeAgent(out.Reason)
		if out.Reason == ReasonOK {
			reply.Text, reply.Source = out.Text, SourceDelegate
		} else {
			reply.Text, reply.Source = DefaultReply, SourceDefault
			s.logger().Debug("using default reply", "session_id", in.SessionID, "reason", out.Reason)
		}
	}
	s.observeReply(reply.Source)

	now := s.now()
	sess.Append(
		session.Turn{Role: session.RoleUser, Content: msg, At: now},
		session.Turn{Role: session.RoleAssistant, Content: reply.Text, At: now},
	)
	sess.UpdatedAt = now
	if err := s.Sessions.Put(ctx, sess); err != nil {
		return Reply{}, fmt.Errorf("save session: %w", err)
	}
	reply.Ended = ChatEnded(sess.History)

	s.logger().Info("chat processed", "session_id", in.SessionID, "intent", intent, "source", reply.Source)
	return reply, nil
}

// History returns the stored turns for a session.
func (s *Service) History(ctx context.Context, sessionID string) ([]session.Turn, error) {
	sess, ok, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return sess.History, nil
}

func render(intent Intent, ds *health.Dataset) (string, bool) {
	switch intent {
	case IntentCholesterol:
		return analysis.Cholesterol(ds.BloodTests), true
	case IntentGlucose:
		return analysis.Glucose(ds.BloodTests), true
	case IntentVitamins:
		return analysis.Vitamins(ds.BloodTests), true
	case IntentBloodPanel:
		return analysis.BloodPanel(ds.BloodTests), true
	case IntentVitals:
		return analysis.Vitals(ds.Vitals), true
	case IntentRecommendations:
		return analysis.Recommendations(ds), true
	case IntentOverview:
		return analysis.Overview(ds), true
	case IntentSleep:
		return analysis.Sleep(ds.Sleep()), true
	}
	return "", false
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return application.SystemClock{}.Now()
	}
	return s.Clock.Now()
}

func (s *Service) logger() *log.Logger {
	if s.Log == nil {
		return log.Default()
	}
	return s.Log
}

func (s *Service) observeIntent(i Intent) {
	if s.Metrics != nil {
		s.Metrics.ObserveIntent(string(i))
	}
}

func (s *Service) observeReply(src Source) {
	if s.Metrics != nil {
		s.Metrics.ObserveReply(string(src))
	}
}

func (s *Service) observeAgent(r Reason) {
	if s.Metrics != nil {
		s.Metrics.ObserveAgentOutcome(string(r))
	}
}
