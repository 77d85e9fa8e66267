package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

const finalSlotCount = 8

// CreateSession builds a fresh session aggregate: hidden board, shuffled
// event deck, shuffled fragment pile, empty final slots and the full
// point pool. The caller becomes the master and is not a roster player.
func CreateSession(repo storage.Repository, cache *content.Cache) (*game.Session, error) {
	slots := make([]game.HintSlot, finalSlotCount)
	for i := range slots {
		slots[i] = game.HintSlot{SlotIndex: i}
	}

	deck := cache.EventDeckNames()
	engine.ShuffleStrings(deck)

	s := &game.Session{
		Key:       uuid.NewString(),
		MasterID:  uuid.NewString(),
		PointPool: cache.InitialPH(),
		EventDeck: deck,
		Board:     game.BuildBoard(cache.Houses()),
		HintDeck: game.HintDeck{
			DrawPile:        engine.ShuffleFragmentPile(finalSlotCount),
			AssignedByHouse: make(map[string]int),
		},
		FinalSlots: slots,
	}
	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession loads one session aggregate for snapshotting.
func GetSession(repo storage.Repository, key string) (*game.Session, error) {
	return loadSession(repo, key)
}

// VerifySession reports whether a session key resolves, without touching
// its state. Used by clients probing an invite link before joining.
func VerifySession(repo storage.Repository, key string) error {
	_, err := loadSession(repo, key)
	return err
}

// DeleteSession removes a session and its roster. Master only.
func DeleteSession(repo storage.Repository, key, masterID string) error {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return err
	}
	if s.MasterID != masterID {
		return ErrNotMaster
	}
	return repo.DeleteSession(key)
}

func loadSession(repo storage.Repository, key string) (*game.Session, error) {
	s, err := repo.GetSessionByKey(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

// requireActive loads a session that must be started and not finished,
// and resolves the acting player.
func requireActive(repo storage.Repository, key, playerID string) (*game.Session, *game.Player, error) {
	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if !s.Started {
		return nil, nil, ErrGameNotStarted
	}
	if s.GameOver {
		return nil, nil, ErrGameFinished
	}
	p := s.PlayerByID(playerID)
	if p == nil {
		return nil, nil, ErrPlayerNotInSession
	}
	return s, p, nil
}

// requireActivePlayer resolves an intent reserved for the player whose
// turn it is. It does not care whether a riddle verdict is pending; that
// extra gate belongs to turn-consuming actions only.
func requireActivePlayer(repo storage.Repository, key, playerID string) (*game.Session, *game.Player, error) {
	s, p, err := requireActive(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	active := engine.ActivePlayer(s)
	if active == nil || active.PlayerID != playerID {
		return nil, nil, ErrNotYourTurn
	}
	return s, p, nil
}

// advanceTurn completes a turn-consuming action and emits the resulting
// notifications: always turn_updated, plus active_event when the wrap
// started a new round and dealt (or exhausted into) a new card.
func advanceTurn(s *game.Session, cache *content.Cache) []notify.Event {
	wrapped := engine.NextTurn(s, cache)
	events := []notify.Event{turnEvent(s)}
	if wrapped {
		events = append(events, activeEventNotice(s))
	}
	return events
}

func turnEvent(s *game.Session) notify.Event {
	payload := map[string]interface{}{
		"active_player_index": s.ActivePlayerIndex,
		"round":               s.Round,
	}
	if p := engine.ActivePlayer(s); p != nil {
		payload["player_id"] = p.PlayerID
	}
	return notify.Broadcast(s.Key, notify.EventTurnUpdated, payload)
}

func activeEventNotice(s *game.Session) notify.Event {
	return notify.Broadcast(s.Key, notify.EventActiveEvent, map[string]interface{}{
		"round":        s.Round,
		"active_event": s.Active,
	})
}

// forcedFinalNotice appends the one-time forced-final notification when a
// debit just emptied the pool.
func forcedFinalNotice(s *game.Session, events []notify.Event) []notify.Event {
	if s.PointPool == 0 && !s.ForcedFinalNotified {
		s.ForcedFinalNotified = true
		events = append(events, notify.Broadcast(s.Key, notify.EventForcedFinal, map[string]interface{}{
			"ph": s.PointPool,
		}))
	}
	return events
}

func stateEvent(s *game.Session) notify.Event {
	return notify.Broadcast(s.Key, notify.EventStateUpdated, s)
}
