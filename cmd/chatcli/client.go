package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/ws"
)

// Client sends chat frames and waits for each reply in turn.
type Client struct {
	conn   *websocket.Conn
	broken bool

	SessionID string
	Domain    string
	ModelID   string
	Timeout   time.Duration
}

// Dial connects to the server.
func Dial(addr string, header http.Header) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, header)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return &Client{conn: conn, Timeout: 2 * time.Minute}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// Broken reports whether the connection failed and cannot be reused.
func (c *Client) Broken() bool {
	return c.broken
}

// ServerError is an error frame returned by the server.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Send sends one message and returns the matching reply. The session id
// returned by the server is kept for later turns.
func (c *Client) Send(message string) (*ws.ChatResultFrame, error) {
	frame := ws.ChatFrame{
		Type:      ws.TypeChat,
		RequestID: uuid.NewString(),
		Message:   message,
		SessionID: c.SessionID,
		Domain:    c.Domain,
		ModelID:   c.ModelID,
	}
	if err := c.conn.WriteJSON(frame); err != nil {
		c.broken = true
		return nil, fmt.Errorf("write chat: %w", err)
	}

	c.conn.SetReadDeadline(time.Now().Add(c.Timeout))
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.broken = true
			return nil, fmt.Errorf("read reply: %w", err)
		}

		var base struct {
			Type      string `json:"type"`
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(data, &base); err != nil {
			return nil, fmt.Errorf("unmarshal reply: %w", err)
		}
		// Frames for other requests are ignored.
		if base.RequestID != "" && base.RequestID != frame.RequestID {
			continue
		}

		switch base.Type {
		case ws.TypeChatResult:
			var result ws.ChatResultFrame
			if err := json.Unmarshal(data, &result); err != nil {
				return nil, fmt.Errorf("unmarshal chat_result: %w", err)
			}
			c.SessionID = result.SessionID
			return &result, nil
		case ws.TypeError:
			var errFrame ws.ErrorFrame
			if err := json.Unmarshal(data, &errFrame); err != nil {
				return nil, fmt.Errorf("unmarshal error: %w", err)
			}
			return nil, &ServerError{Status: errFrame.Status, Message: errFrame.Error}
		default:
			return nil, fmt.Errorf("unexpected reply type %q", base.Type)
		}
	}
}
