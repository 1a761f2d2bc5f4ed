package notify

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "homestay/internal/pkg/jwt"
	"homestay/internal/pkg/response"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin checks happen at the CORS layer; the socket itself only trusts
	// the token
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwt}
}

func (h *WSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/notifications", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection after validating the token from the
// query string (websocket clients cannot set headers).
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	if h.hub.IsOnline(claims.UserID) {
		log.Printf("account %s reconnected, replacing previous socket", claims.UserID)
	} else {
		log.Printf("account %s connected for notifications", claims.UserID)
	}
	h.hub.Register(claims.UserID, conn)

	defer func() {
		h.hub.Unregister(claims.UserID)
		log.Printf("account %s disconnected", claims.UserID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go h.pingLoop(conn)

	// the server never expects inbound messages; the read loop only keeps
	// the connection alive and detects closes
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return
		}
	}
}
