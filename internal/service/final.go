package service

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// PlaceHint puts a collected hint card into a final-riddle slot. Slot
// work is free and does not consume the turn, but like every table intent
// it belongs to the player whose turn it is.
func PlaceHint(repo storage.Repository, key, playerID, cardID string, slotIndex int) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, _, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	if err := engine.PlaceHint(s, cardID, slotIndex); err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, []notify.Event{slotEvent(s)}, nil
}

// RemoveHint clears a final-riddle slot.
func RemoveHint(repo storage.Repository, key, playerID string, slotIndex int) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, _, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	if err := engine.RemoveHint(s, slotIndex); err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, []notify.Event{slotEvent(s)}, nil
}

// SubmitFinalAnswer resolves the final challenge. Only the active player
// may speak for the table, and only once every slot is filled or the pool
// hit zero. It always ends the game: right answer wins, wrong answer
// loses.
func SubmitFinalAnswer(repo storage.Repository, cache *content.Cache, key, playerID, answer string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, _, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	challenge := cache.FinalChallenge()
	outcome, err := engine.ResolveFinal(s, answer, challenge.Answer)
	if err != nil {
		return nil, nil, err
	}

	message := challenge.FailureMessage
	if outcome == game.OutcomeWin {
		message = challenge.SuccessMessage
	}
	events := []notify.Event{
		notify.Broadcast(s.Key, notify.EventGameFinished, map[string]interface{}{
			"outcome":   outcome,
			"message":   message,
			"player_id": playerID,
		}),
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

func slotEvent(s *game.Session) notify.Event {
	return notify.Broadcast(s.Key, notify.EventSlotUpdated, map[string]interface{}{
		"final_slots":    s.FinalSlots,
		"assembled_text": s.AssembledText,
	})
}
