package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

// Subscribe upgrades the request to a websocket subscription on the
// session's room. player_id is optional; without it the connection only
// receives broadcast events.
func (h *GameHandler) Subscribe(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return
	}
	if err := service.VerifySession(h.repo, sessionID); err != nil {
		h.fail(c, sessionID, "", err)
		return
	}
	h.hub.Handle(c.Writer, c.Request, sessionID, c.Query("player_id"))
}
