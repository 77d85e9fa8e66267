package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

type moveRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	HouseID  string `json:"house_id" binding:"required"`
}

type revealRequest struct {
	MasterID string `json:"master_id" binding:"required"`
	HouseID  string `json:"house_id" binding:"required"`
}

// Move walks the active player onto an adjacent house.
func (h *GameHandler) Move(c *gin.Context) {
	key := c.Param("sessionID")
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.Move(h.repo, h.cache, key, req.PlayerID, req.HouseID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"ph": s.PointPool, "round": s.Round})
}

// LongJump warps the active player to any house for the jump cost.
func (h *GameHandler) LongJump(c *gin.Context) {
	key := c.Param("sessionID")
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.LongJump(h.repo, h.cache, key, req.PlayerID, req.HouseID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"ph": s.PointPool, "round": s.Round})
}

// Explore flips the active player's current house face up.
func (h *GameHandler) Explore(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.Explore(h.repo, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"ph": s.PointPool})
}

// Pass ends the active player's turn without acting.
func (h *GameHandler) Pass(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.Pass(h.repo, h.cache, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"round": s.Round})
}

// RevealHouse is the master's narrative override for flipping a house.
func (h *GameHandler) RevealHouse(c *gin.Context) {
	key := c.Param("sessionID")
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, events, err := service.RevealHouse(h.repo, key, req.MasterID, req.HouseID)
	if err != nil {
		h.fail(c, key, "", err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
