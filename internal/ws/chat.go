// Package ws is the WebSocket chat transport.
package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/healthnest/healthnest-be/internal/api/middleware"
	"github.com/healthnest/healthnest-be/internal/chat"
	"github.com/healthnest/healthnest-be/internal/profile"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the widget is embedded on arbitrary origins
	},
}

// messagesPerMinute caps how fast a single connection may send.
const messagesPerMinute = 30

// ChatHandler handles WebSocket chat connections
type ChatHandler struct {
	engine *chat.Engine
}

// NewChatHandler creates a new WebSocket chat handler
func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// IncomingMessage represents a message from the client
type IncomingMessage struct {
	Content string           `json:"content"`
	Profile *profile.Profile `json:"profile,omitempty"`
}

// OutgoingMessage represents a message to the client
type OutgoingMessage struct {
	Type    string      `json:"type"` // "message", "error", "done"
	Content string      `json:"content,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HandleChat upgrades the request and serves messages until the client
// disconnects
func (h *ChatHandler) HandleChat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	limiter := middleware.NewWebSocketLimiter(messagesPerMinute)
	log.Printf("WebSocket connected: remote=%s", c.ClientIP())

	for {
		var msg IncomingMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		if !limiter.Allow() {
			h.sendError(conn, "Rate limit exceeded. Please slow down.")
			continue
		}

		if msg.Content == "" {
			h.sendError(conn, "Empty message")
			continue
		}

		result := h.engine.Process(c.Request.Context(), msg.Content, msg.Profile)
		if err := h.sendResponse(conn, result); err != nil {
			log.Printf("WebSocket write error: %v", err)
			break
		}
	}
}

func (h *ChatHandler) sendResponse(conn *websocket.Conn, result chat.Response) error {
	if err := conn.WriteJSON(OutgoingMessage{
		Type:    "message",
		Content: result.Answer,
		Data: map[string]interface{}{
			"confidence": result.Confidence,
			"category":   result.Category,
		},
	}); err != nil {
		return err
	}
	return h.sendDone(conn)
}

func (h *ChatHandler) sendError(conn *websocket.Conn, message string) error {
	return conn.WriteJSON(OutgoingMessage{
		Type:    "error",
		Content: message,
	})
}

func (h *ChatHandler) sendDone(conn *websocket.Conn) error {
	return conn.WriteJSON(OutgoingMessage{
		Type: "done",
	})
}
