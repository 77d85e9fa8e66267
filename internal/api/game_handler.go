package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/logging"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// GameHandler groups all session-related HTTP handlers.
type GameHandler struct {
	repo      storage.Repository
	cache     *content.Cache
	hub       *notify.Hub
	publicURL string
	// snapshots collapses concurrent GETs of the same session into one
	// database read.
	snapshots singleflight.Group
}

// NewGameHandler creates a GameHandler wired to the repository, the
// static content cache and the notification hub. publicURL is the
// externally reachable base used for join links.
func NewGameHandler(repo storage.Repository, cache *content.Cache, hub *notify.Hub, publicURL string) *GameHandler {
	return &GameHandler{repo: repo, cache: cache, hub: hub, publicURL: publicURL}
}

// publish pushes service events to the websocket rooms. Delivery is
// best-effort and independent of the HTTP response lifecycle.
func (h *GameHandler) publish(events []notify.Event) {
	if len(events) == 0 {
		return
	}
	h.hub.Publish(context.Background(), events...)
}

// fail maps a service error to an HTTP status. Game-rule rejections are
// additionally pushed to the acting player's websocket as action_rejected
// so every open client of theirs sees why nothing changed.
func (h *GameHandler) fail(c *gin.Context, sessionID, playerID string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		fields := logging.Fields{constants.LogFieldSessionID: sessionID}
		if playerID != "" {
			fields[constants.LogFieldPlayerID] = playerID
		}
		logging.Error("request failed", err, fields)
		c.JSON(status, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateSession})
		return
	}
	if playerID != "" && sessionID != "" {
		h.publish([]notify.Event{notify.To(sessionID, playerID, notify.EventActionRejected, gin.H{
			constants.JSONKeyError: err.Error(),
		})})
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotMaster),
		errors.Is(err, service.ErrPlayerNotInSession):
		return http.StatusForbidden
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrUnknownHero),
		errors.Is(err, service.ErrUnknownHouse),
		errors.Is(err, service.ErrNotAdjacent),
		errors.Is(err, service.ErrSamePosition),
		errors.Is(err, engine.ErrUnknownHouse),
		errors.Is(err, engine.ErrInvalidSlot),
		errors.Is(err, engine.ErrCardNotFound):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGameNotStarted),
		errors.Is(err, service.ErrGameAlreadyStarted),
		errors.Is(err, service.ErrGameFinished),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrLobbyFull),
		errors.Is(err, service.ErrHeroTaken),
		errors.Is(err, service.ErrPlayersNotReady),
		errors.Is(err, engine.ErrInsufficientPH),
		errors.Is(err, engine.ErrRiddlePending),
		errors.Is(err, engine.ErrNoPendingRiddle),
		errors.Is(err, engine.ErrHouseNotRetryable),
		errors.Is(err, engine.ErrNoAbility),
		errors.Is(err, engine.ErrAbilityAlreadyUsed),
		errors.Is(err, engine.ErrNoHiddenHouses),
		errors.Is(err, engine.ErrOfferMismatch),
		errors.Is(err, engine.ErrFinalNotAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
