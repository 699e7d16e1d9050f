package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/health-agent/internal/domain/agent"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	"github.com/bryanwahyu/health-agent/internal/domain/session"
)

type fakePlatform struct {
	mu          sync.Mutex
	registerID  string
	registerErr error
	reply       string
	sendErr     error
	registered  int
	sent        []agent.Message
}

func (f *fakePlatform) Register(_ context.Context, _ agent.AgentProfile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered++
	return f.registerID, f.registerErr
}

func (f *fakePlatform) SendMessage(_ context.Context, msg agent.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.reply, f.sendErr
}

func TestDelegate_Ask(t *testing.T) {
	ctx := context.Background()
	ds := &health.Dataset{BloodTests: []health.BloodTestRecord{{Date: "2024-01-01"}}}

	t.Run("nil platform", func(t *testing.T) {
		out := NewDelegate(nil, "", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonNotConfigured, out.Reason)
		assert.ErrorIs(t, out.Err, agent.ErrNotConfigured)
	})

	t.Run("nil delegate", func(t *testing.T) {
		var d *Delegate
		assert.Equal(t, ReasonNotConfigured, d.Ask(ctx, "hi", "s1", ds).Reason)
	})

	t.Run("registers once and sends", func(t *testing.T) {
		p := &fakePlatform{registerID: "agent-1", reply: "  hello from agent "}
		d := NewDelegate(p, "", time.Second, nil)

		out := d.Ask(ctx, "hi", "s1", ds)
		require.Equal(t, ReasonOK, out.Reason)
		assert.Equal(t, "hello from agent", out.Text)

		d.Ask(ctx, "again", "s1", ds)
		assert.Equal(t, 1, p.registered)
		assert.Equal(t, "agent-1", d.AgentID())
		require.Len(t, p.sent, 2)
		assert.Equal(t, "agent-1", p.sent[0].AgentID)
		assert.Equal(t, "s1", p.sent[0].SessionID)
		assert.Contains(t, p.sent[0].Metadata["health_data"], "2024-01-01")
	})

	t.Run("configured id skips registration", func(t *testing.T) {
		p := &fakePlatform{reply: "ok"}
		d := NewDelegate(p, "fixed", time.Second, nil)
		assert.Equal(t, ReasonOK, d.Ask(ctx, "hi", "s1", nil).Reason)
		assert.Zero(t, p.registered)
	})

	t.Run("registration failure", func(t *testing.T) {
		p := &fakePlatform{registerErr: errors.New("boom")}
		out := NewDelegate(p, "", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonUnregistered, out.Reason)
		assert.Empty(t, p.sent)
	})

	t.Run("transport failure", func(t *testing.T) {
		p := &fakePlatform{sendErr: errors.New("connection refused")}
		out := NewDelegate(p, "a", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonTransport, out.Reason)
		assert.Empty(t, out.Text)
	})

	t.Run("empty reply", func(t *testing.T) {
		p := &fakePlatform{reply: "   "}
		out := NewDelegate(p, "a", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonEmpty, out.Reason)

		p = &fakePlatform{sendErr: agent.ErrEmptyReply}
		out = NewDelegate(p, "a", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonEmpty, out.Reason)
	})

	t.Run("platform without credentials", func(t *testing.T) {
		p := &fakePlatform{registerErr: agent.ErrNotConfigured}
		out := NewDelegate(p, "", time.Second, nil).Ask(ctx, "hi", "s1", ds)
		assert.Equal(t, ReasonNotConfigured, out.Reason)
	})
}

func TestChatEnded(t *testing.T) {
	user := func(s string) session.Turn { return session.Turn{Role: session.RoleUser, Content: s} }
	bot := func(s string) session.Turn { return session.Turn{Role: session.RoleAssistant, Content: s} }

	assert.False(t, ChatEnded(nil))
	assert.False(t, ChatEnded([]session.Turn{user("show my blood test"), bot("Blood Test Analysis")}))
	assert.True(t, ChatEnded([]session.Turn{user("Thanks, that's all!")}))
	assert.True(t, ChatEnded([]session.Turn{user("ok bye")}))
	assert.False(t, ChatEnded([]session.Turn{user("is there a clinic nearby")}))
	assert.False(t, ChatEnded([]session.Turn{bot("thank you for asking")}))

	long := []session.Turn{user("goodbye")}
	for i := 0; i < 10; i++ {
		long = append(long, user("what about my sleep"))
	}
	assert.False(t, ChatEnded(long))
}
