package controllers

import (
	"net/http"
	"strings"

	"github.com/campus-voice/api-go/realtime"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RealtimeController upgrades /ws connections and hands them to the hub.
type RealtimeController struct {
	Hub    *realtime.Hub
	Logger *zap.Logger
}

func NewRealtimeController(hub *realtime.Hub, logger *zap.Logger) *RealtimeController {
	return &RealtimeController{Hub: hub, Logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS authenticates the connection and registers it with the hub.
// Browsers cannot set headers on websocket dials, so the access token is
// accepted from the "token" query parameter as well as the usual
// Authorization header.
func (rc *RealtimeController) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	user, ok := utils.ClaimsToUser(claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.Logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &realtime.WSClient{
		UserID: user.UserID,
		Conn:   conn,
		Hub:    rc.Hub,
		Send:   make(chan realtime.ChangeEvent, 256),
		Logger: rc.Logger,
	}

	rc.Hub.RegisterCh <- client
	client.Run()
}
