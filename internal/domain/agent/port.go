package agent

import "context"

// AgentProfile describes the agent registered on the platform.
type AgentProfile struct {
	Name        string
	Description string
	Category    string
}

// Message is one user message relayed to a registered agent.
type Message struct {
	AgentID   string
	Content   string
	SessionID string
	Metadata  map[string]string
}

// Platform is the external conversational agent service.
type Platform interface {
	Register(ctx context.Context, profile AgentProfile) (string, error)
	SendMessage(ctx context.Context, msg Message) (string, error)
}

// DefaultProfile is registered when no agent id is configured.
var DefaultProfile = AgentProfile{
	Name:        "Health AI Assistant",
	Description: "Personal health assistant that analyzes your health data and provides insights and recommendations",
	Category:    "daily",
}
