package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

type joinRequest struct {
	Name string `json:"name" binding:"required"`
}

type playerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

type heroRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Hero     string `json:"hero" binding:"required"`
}

type masterRequest struct {
	MasterID string `json:"master_id" binding:"required"`
}

// JoinSession adds a player to an unstarted session and hands back their
// player credential.
func (h *GameHandler) JoinSession(c *gin.Context) {
	key := c.Param("sessionID")
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, p, events, err := service.JoinLobby(h.repo, key, req.Name)
	if err != nil {
		h.fail(c, key, "", err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.Key,
		"player_id":  p.PlayerID,
		"turn_order": p.TurnOrder,
	})
}

// ChooseHero assigns a hero to a lobby player.
func (h *GameHandler) ChooseHero(c *gin.Context) {
	key := c.Param("sessionID")
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, events, err := service.ChooseHero(h.repo, key, req.PlayerID, game.HeroType(req.Hero))
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

// LeaveSession removes a player from an unstarted session.
func (h *GameHandler) LeaveSession(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	_, events, err := service.LeaveLobby(h.repo, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

// StartGame begins the match. Master only.
func (h *GameHandler) StartGame(c *gin.Context) {
	key := c.Param("sessionID")
	var req masterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.StartGame(h.repo, h.cache, key, req.MasterID)
	if err != nil {
		h.fail(c, key, "", err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus: "started",
		"round":                 s.Round,
	})
}
