package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

// CreateSession opens a new session and returns the master credentials.
// The master_id in this response is the only time the secret leaves the
// server; snapshots never carry it.
func (h *GameHandler) CreateSession(c *gin.Context) {
	s, err := service.CreateSession(h.repo, h.cache)
	if err != nil {
		h.fail(c, "", "", err)
		return
	}
	snapshot, err := MarshalIntoSnakeTimestamps(s)
	if err != nil {
		h.fail(c, s.Key, "", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.Key,
		"master_id":  s.MasterID,
		"session":    snapshot,
	})
}

// GetSession returns the full session snapshot. Concurrent reads of the
// same session collapse into one database round trip.
func (h *GameHandler) GetSession(c *gin.Context) {
	key := c.Param("sessionID")
	v, err, _ := h.snapshots.Do(key, func() (interface{}, error) {
		s, err := service.GetSession(h.repo, key)
		if err != nil {
			return nil, err
		}
		return MarshalIntoSnakeTimestamps(s)
	})
	if err != nil {
		h.fail(c, key, "", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// VerifySession reports whether a session key resolves, plus the current
// roster size. Probing an unknown key is not an error: invite links get
// checked freely before anyone commits to joining.
func (h *GameHandler) VerifySession(c *gin.Context) {
	key := c.Param("sessionID")
	s, err := service.GetSession(h.repo, key)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}
		h.fail(c, key, "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists":  true,
		"players": len(s.Players),
		"started": s.Started,
	})
}

// DeleteSession tears a session down. Master only; the secret travels as
// a query parameter since DELETE bodies are unreliable across proxies.
func (h *GameHandler) DeleteSession(c *gin.Context) {
	key := c.Param("sessionID")
	masterID := c.Query("master_id")
	if err := service.DeleteSession(h.repo, key, masterID); err != nil {
		h.fail(c, key, "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "deleted"})
}
