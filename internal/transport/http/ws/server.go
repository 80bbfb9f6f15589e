// Package ws serves chat turns over WebSocket connections.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/domain"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/observability"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/service"
	"github.com/itspawanrajput/AWS-Bedrock-GenAI-Chatbot/internal/transport/http/apierr"
)

const (
	maxMessageSize = 64 * 1024
	readTimeout    = 120 * time.Second
	writeTimeout   = 10 * time.Second
	pingInterval   = 50 * time.Second
)

// Server handles WebSocket connections.
type Server struct {
	service  *service.Service
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(svc *service.Service) *Server {
	return &Server{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Same permissive origin policy as the JSON API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the upgrade endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	if auth != nil {
		e.GET("/ws", s.HandleWebSocket, auth)
		return
	}
	e.GET("/ws", s.HandleWebSocket)
}

// connection serializes writes; frames are read and answered one at a time.
type connection struct {
	conn      *websocket.Conn
	mu        sync.Mutex
	sessionID string
}

func (c *connection) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

func (c *connection) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// HandleWebSocket upgrades the request and serves frames until the peer
// goes away.
func (s *Server) HandleWebSocket(c echo.Context) error {
	ctx := c.Request().Context()
	log := observability.LoggerFromContext(ctx)

	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Warn("failed to upgrade websocket", "error", err)
		return nil
	}
	conn := &connection{conn: ws}
	defer ws.Close()

	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(conn, done)

	ws.SetReadLimit(maxMessageSize)
	ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", "error", err)
			}
			return nil
		}
		ws.SetReadDeadline(time.Now().Add(readTimeout))

		if err := conn.writeJSON(s.handleFrame(ctx, conn, data)); err != nil {
			log.Warn("websocket write failed", "error", err)
			return nil
		}
	}
}

func (s *Server) keepAlive(conn *connection, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}

// handleFrame dispatches one client frame and returns the reply frame.
func (s *Server) handleFrame(ctx context.Context, conn *connection, data []byte) any {
	var frame ChatFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		observability.LoggerFromContext(ctx).Warn("invalid websocket frame", "error", err)
		return errorFrame("", http.StatusInternalServerError, apierr.MsgInternal)
	}
	if frame.Type != TypeChat {
		return errorFrame(frame.RequestID, http.StatusBadRequest, "unknown message type: "+frame.Type)
	}

	requestID := frame.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = observability.WithRequestID(ctx, requestID)

	sessionID := frame.SessionID
	if sessionID == "" {
		sessionID = conn.sessionID
	}

	resp, err := s.service.Chat(ctx, domain.ChatRequest{
		Message:   frame.Message,
		SessionID: sessionID,
		Domain:    frame.Domain,
		ModelID:   frame.ModelID,
	})
	if err != nil {
		status, msg := apierr.Classify(err)
		return errorFrame(frame.RequestID, status, msg)
	}

	conn.sessionID = resp.SessionID
	return ChatResultFrame{Type: TypeChatResult, RequestID: frame.RequestID, ChatResponse: *resp}
}

func errorFrame(requestID string, status int, msg string) ErrorFrame {
	return ErrorFrame{Type: TypeError, RequestID: requestID, Error: msg, Status: status}
}
