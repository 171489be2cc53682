package request

import "strings"

// ChatRequest is one customer message. An empty session_id starts a new conversation.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r ChatRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r ChatRequest) ResolveMessage() string {
	return strings.TrimSpace(r.Message)
}
