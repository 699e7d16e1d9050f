package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/health-agent/internal/application"
	"github.com/bryanwahyu/health-agent/internal/application/analysis"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	infrasession "github.com/bryanwahyu/health-agent/internal/infra/session"
)

type countingRecorder struct {
	intents, replies, outcomes []string
}

func (c *countingRecorder) ObserveIntent(i string)       { c.intents = append(c.intents, i) }
func (c *countingRecorder) ObserveReply(s string)        { c.replies = append(c.replies, s) }
func (c *countingRecorder) ObserveAgentOutcome(r string) { c.outcomes = append(c.outcomes, r) }

func sampleDataset() *health.Dataset {
	return &health.Dataset{
		BloodTests: []health.BloodTestRecord{{
			Date: "2024-03-01",
			Results: health.NewResults(health.NamedResult{
				Name:   health.TestCholesterolTotal,
				Result: health.TestResult{Value: health.NewQuantity("240"), Unit: "mg/dL", NormalRange: "<200", Status: health.StatusElevated},
			}),
		}},
	}
}

func newService(p *fakePlatform) (*Service, *countingRecorder) {
	rec := &countingRecorder{}
	var d *Delegate
	if p != nil {
		d = NewDelegate(p, "agent-1", time.Second, nil)
	}
	return &Service{
		Sessions: infrasession.NewMemoryStore(),
		Delegate: d,
		Clock:    application.FixedClock{T: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		Metrics:  rec,
	}, rec
}

func TestService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		svc, _ := newService(nil)
		_, err := svc.Process(ctx, ProcessInput{Message: "   ", SessionID: "s"})
		assert.True(t, errors.Is(err, ErrEmptyMessage))
	})

	t.Run("local analyzer", func(t *testing.T) {
		svc, rec := newService(nil)
		reply, err := svc.Process(ctx, ProcessInput{Message: "what's my cholesterol and blood test result", SessionID: "s", Dataset: sampleDataset()})
		require.NoError(t, err)
		assert.Equal(t, IntentCholesterol, reply.Intent)
		assert.Equal(t, SourceLocal, reply.Source)
		assert.Contains(t, reply.Text, "Cholesterol Analysis (from 2024-03-01)")
		assert.Equal(t, []string{"cholesterol"}, rec.intents)
		assert.Empty(t, rec.outcomes)

		turns, err := svc.History(ctx, "s")
		require.NoError(t, err)
		require.Len(t, turns, 2)
		assert.Equal(t, "user", turns[0].Role)
		assert.Equal(t, 2024, turns[1].At.Year())
	})

	t.Run("reuses stored dataset", func(t *testing.T) {
		svc, _ := newService(nil)
		_, err := svc.Process(ctx, ProcessInput{Message: "blood test", SessionID: "s", Dataset: sampleDataset()})
		require.NoError(t, err)
		reply, err := svc.Process(ctx, ProcessInput{Message: "cholesterol", SessionID: "s"})
		require.NoError(t, err)
		assert.Contains(t, reply.Text, "Total Cholesterol: 240 mg/dL")
	})

	t.Run("no dataset anywhere", func(t *testing.T) {
		svc, _ := newService(nil)
		reply, err := svc.Process(ctx, ProcessInput{Message: "vitals", SessionID: "fresh"})
		require.NoError(t, err)
		assert.Equal(t, analysis.NoVitalsData, reply.Text)
	})

	t.Run("delegate answers", func(t *testing.T) {
		p := &fakePlatform{reply: "Drink water."}
		svc, rec := newService(p)
		reply, err := svc.Process(ctx, ProcessInput{Message: "hello", SessionID: "s", Dataset: sampleDataset()})
		require.NoError(t, err)
		assert.Equal(t, IntentNone, reply.Intent)
		assert.Equal(t, SourceDelegate, reply.Source)
		assert.Equal(t, "Drink water.", reply.Text)
		assert.Equal(t, []string{"ok"}, rec.outcomes)
	})

	t.Run("delegate failure falls back to default", func(t *testing.T) {
		p := &fakePlatform{sendErr: errors.New("timeout")}
		svc, rec := newService(p)
		reply, err := svc.Process(ctx, ProcessInput{Message: "hello", SessionID: "s"})
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, reply.Source)
		assert.Equal(t, DefaultReply, reply.Text)
		assert.Equal(t, []string{"transport"}, rec.outcomes)
		assert.Equal(t, []string{"default"}, rec.replies)
	})

	t.Run("no delegate", func(t *testing.T) {
		svc, rec := newService(nil)
		reply, err := svc.Process(ctx, ProcessInput{Message: "hello", SessionID: "s"})
		require.NoError(t, err)
		assert.Equal(t, DefaultReply, reply.Text)
		assert.Equal(t, []string{"not_configured"}, rec.outcomes)
	})

	t.Run("goodbye ends chat", func(t *testing.T) {
		svc, _ := newService(nil)
		reply, err := svc.Process(ctx, ProcessInput{Message: "thanks, bye", SessionID: "s"})
		require.NoError(t, err)
		assert.True(t, reply.Ended)
	})
}
