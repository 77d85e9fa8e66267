package service

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// SubmitRiddle charges the active player for attempting their current
// house's riddle and parks the submission until the master's verdict.
// Only the house a player stands on can be attempted.
func SubmitRiddle(repo storage.Repository, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	sirenSignal, err := engine.SubmitRiddle(s, p, p.Position)
	if err != nil {
		return nil, nil, err
	}

	events := []notify.Event{
		notify.Broadcast(s.Key, notify.EventRiddleSubmitted, map[string]interface{}{
			"house_id":  p.Position,
			"player_id": p.PlayerID,
			"is_retry":  false,
			"ph":        s.PointPool,
		}),
	}
	if sirenSignal {
		events = append(events, notify.Broadcast(s.Key, notify.EventSubtleHintSignal, map[string]interface{}{
			"player_id": p.PlayerID,
		}))
	}
	events = forcedFinalNotice(s, events)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// RetryRiddle charges the flat retry surcharge for re-attempting the
// active player's current house, hoping to upgrade its hint to the easy
// tier.
func RetryRiddle(repo storage.Repository, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	if err := engine.SubmitRetry(s, p, p.Position); err != nil {
		return nil, nil, err
	}

	events := []notify.Event{
		notify.Broadcast(s.Key, notify.EventRiddleSubmitted, map[string]interface{}{
			"house_id":  p.Position,
			"player_id": p.PlayerID,
			"is_retry":  true,
			"ph":        s.PointPool,
		}),
	}
	events = forcedFinalNotice(s, events)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// ConfirmRiddle applies the master's quality verdict to the pending
// submission, materializes (or upgrades) the house's hint card and ends
// the submitting player's turn.
func ConfirmRiddle(repo storage.Repository, cache *content.Cache, key, masterID string, quality game.RiddleQuality) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if s.MasterID != masterID {
		return nil, nil, ErrNotMaster
	}
	if !s.Started {
		return nil, nil, ErrGameNotStarted
	}
	if s.GameOver {
		return nil, nil, ErrGameFinished
	}

	result, err := engine.ConfirmRiddle(s, quality, cache)
	if err != nil {
		return nil, nil, err
	}

	events := []notify.Event{
		notify.Broadcast(s.Key, notify.EventRiddleResolved, map[string]interface{}{
			"house_id":  result.HouseID,
			"player_id": result.PlayerID,
			"quality":   result.Quality,
		}),
	}
	if result.Card != nil {
		cardEvent := notify.EventHintCardUpdated
		if result.CardCreated {
			cardEvent = notify.EventHintCardAdded
		}
		events = append(events, notify.Broadcast(s.Key, cardEvent, result.Card))
	}
	events = append(events, advanceTurn(s, cache)...)

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}
