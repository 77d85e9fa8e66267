package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

type placeHintRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	CardID    string `json:"card_id" binding:"required"`
	SlotIndex *int   `json:"slot_index" binding:"required"`
}

type removeHintRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	SlotIndex *int   `json:"slot_index" binding:"required"`
}

type answerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// PlaceHint puts a collected hint card into a final-riddle slot.
func (h *GameHandler) PlaceHint(c *gin.Context) {
	key := c.Param("sessionID")
	var req placeHintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.PlaceHint(h.repo, key, req.PlayerID, req.CardID, *req.SlotIndex)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"assembled_text": s.AssembledText})
}

// RemoveHint clears a final-riddle slot.
func (h *GameHandler) RemoveHint(c *gin.Context) {
	key := c.Param("sessionID")
	var req removeHintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.RemoveHint(h.repo, key, req.PlayerID, *req.SlotIndex)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"assembled_text": s.AssembledText})
}

// SubmitFinalAnswer resolves the final challenge and ends the game.
func (h *GameHandler) SubmitFinalAnswer(c *gin.Context) {
	key := c.Param("sessionID")
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.SubmitFinalAnswer(h.repo, h.cache, key, req.PlayerID, req.Answer)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"outcome": s.Outcome})
}
