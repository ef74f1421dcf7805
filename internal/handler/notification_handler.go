package handler

import (
	"log"
	"net/http"

	"fitpro.com.br/fitnessproapi/internal/service"
	"fitpro.com.br/fitnessproapi/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationHandler struct {
	hub      *service.NotificationHub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(hub *service.NotificationHub) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS is enforced at the HTTP layer; the upgrade itself is open.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket keeps the connection open and pushes events until the
// client goes away. Auth runs in the middleware; websocket clients that
// cannot set headers pass the token as the "token" query parameter.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	usuario, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}

	client := service.NewWSClient(usuario.ID, conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// One writer per connection; gorilla forbids concurrent writes.
	go client.WritePump()

	// Drain reads so close frames and pings are processed; the pump writes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
