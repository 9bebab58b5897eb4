package web

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"logview/internal/logging"
)

// The zero CheckOrigin rejects cross-origin upgrades.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16 * 1024,
}

const maxRefreshMessage = 512

// handleLogsSocket answers every inbound message with one fresh fetch. The
// server never pushes on its own.
func (s *Server) handleLogsSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.WithContext(c.Request.Context(), s.logger).Debug("websocket upgrade failed", logging.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRefreshMessage)

	logger := logging.WithContext(c.Request.Context(), s.logger)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket closed", logging.Error(err))
			}
			return
		}
		requestID := uuid.NewString()
		ctx := logging.WithRequestID(context.Background(), requestID)
		result := s.fetcher.Fetch(ctx, "")
		if err := conn.WriteJSON(result.Response(requestID)); err != nil {
			logger.Debug("websocket write failed", logging.Error(err))
			return
		}
	}
}
