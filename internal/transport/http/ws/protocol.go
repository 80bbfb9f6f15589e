package ws

import "github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"

// Frame types from client to server
const (
	TypeChat = "chat"
)

// Frame types from server to client
const (
	TypeChatResult = "chat_result"
	TypeError      = "error"
)

// ChatFrame is sent by the client for one conversational turn. SessionID may
// be omitted after the first turn on a connection.
type ChatFrame struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	Domain    string `json:"domain,omitempty"`
	ModelID   string `json:"model_id,omitempty"`
}

// ChatResultFrame carries a successful turn.
type ChatResultFrame struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	domain.ChatResponse
}

// ErrorFrame reports a failed frame. Status follows the HTTP status policy.
type ErrorFrame struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
	Status    int    `json:"status"`
}
