package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

type confirmRequest struct {
	MasterID string `json:"master_id" binding:"required"`
	Quality  string `json:"quality" binding:"required"`
}

// SubmitRiddle charges the active player for attempting their current
// house's riddle and parks the submission for the master's verdict.
func (h *GameHandler) SubmitRiddle(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.SubmitRiddle(h.repo, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"ph": s.PointPool})
}

// RetryRiddle charges the flat surcharge for re-attempting the current
// house.
func (h *GameHandler) RetryRiddle(c *gin.Context) {
	key := c.Param("sessionID")
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.RetryRiddle(h.repo, key, req.PlayerID)
	if err != nil {
		h.fail(c, key, req.PlayerID, err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"ph": s.PointPool})
}

// ConfirmRiddle applies the master's quality verdict to the pending
// submission.
func (h *GameHandler) ConfirmRiddle(c *gin.Context) {
	key := c.Param("sessionID")
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	quality := game.RiddleQuality(req.Quality)
	if quality != game.QualityOptimal && quality != game.QualityPoor {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, events, err := service.ConfirmRiddle(h.repo, h.cache, key, req.MasterID, quality)
	if err != nil {
		h.fail(c, key, "", err)
		return
	}
	h.publish(events)
	c.JSON(http.StatusOK, gin.H{"round": s.Round})
}
