package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

type witchRevealRequest struct {
	PlayerID string   `json:"player_id" binding:"required"`
	HouseIDs []string `json:"house_ids" binding:"required"`
}

// UseAbility activates a player's once-per-game hero ability.
func (h *GameHandler) UseAbility(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, events, err := service.UseAbility(h.repo, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

// WitchReveal completes the witch's two-phase cost peek.
func (h *GameHandler) WitchReveal(c *gin.Context) {
	key := c.Param("sessionID")
	var req witchRevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, events, err := service.WitchReveal(h.repo, key, req.PlayerID, req.HouseIDs)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
