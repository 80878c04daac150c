package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/reserve-go/models"
	"github.com/linskybing/reserve-go/response"
	"github.com/linskybing/reserve-go/services"
	"github.com/linskybing/reserve-go/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	Events *services.EventBus
}

func NewWSHandler(events *services.EventBus) *WSHandler {
	return &WSHandler{Events: events}
}

// WatchReservations streams reservation lifecycle events to the admin
// dashboard as JSON frames until the client disconnects.
func (h *WSHandler) WatchReservations(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if p.Role != string(models.UserRoleAdmin) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	events := h.Events.Subscribe()
	defer h.Events.Unsubscribe(events)

	// Reader goroutine drains control frames and signals disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
