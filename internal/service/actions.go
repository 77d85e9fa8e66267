package service

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// requireTurn resolves an action attempt by the active player with no
// riddle submission in flight.
func requireTurn(repo storage.Repository, key, playerID string) (*game.Session, *game.Player, error) {
	s, p, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	if s.PendingRiddle != nil {
		return nil, nil, engine.ErrRiddlePending
	}
	return s, p, nil
}

// Move walks the active player to an adjacent house and ends the turn.
// Costs 1 PH unless an event or the human's consumable makes it free.
func Move(repo storage.Repository, cache *content.Cache, key, playerID, houseID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireTurn(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	if s.House(houseID) == nil {
		return nil, nil, ErrUnknownHouse
	}
	if houseID == p.Position {
		return nil, nil, ErrSamePosition
	}
	if !game.Adjacent(p.Position, houseID) {
		return nil, nil, ErrNotAdjacent
	}
	if _, err := engine.Debit(s, engine.ActionMove, p, 0); err != nil {
		return nil, nil, err
	}
	p.Position = houseID

	events := []notify.Event{stateEvent(s)}
	events = append(events, advanceTurn(s, cache)...)
	events = forcedFinalNotice(s, events)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// LongJump warps the active player to any other house for the jump cost
// (2 PH unless an event overrides it) and ends the turn.
func LongJump(repo storage.Repository, cache *content.Cache, key, playerID, houseID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireTurn(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	if s.House(houseID) == nil {
		return nil, nil, ErrUnknownHouse
	}
	if houseID == p.Position {
		return nil, nil, ErrSamePosition
	}
	if _, err := engine.Debit(s, engine.ActionLongJump, p, 0); err != nil {
		return nil, nil, err
	}
	p.Position = houseID

	events := []notify.Event{stateEvent(s)}
	events = append(events, advanceTurn(s, cache)...)
	events = forcedFinalNotice(s, events)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// Explore looks at the active player's current house and flips it face
// up. The flat 1 PH fee is charged on every look, face up or not. It
// does not end the turn, so the usual pattern of explore-then-resolve
// stays one turn.
func Explore(repo storage.Repository, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireTurn(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}
	house := s.House(p.Position)
	if house == nil {
		return nil, nil, ErrUnknownHouse
	}
	if _, err := engine.Debit(s, engine.ActionExplore, p, 0); err != nil {
		return nil, nil, err
	}
	house.Revealed = true

	events := []notify.Event{stateEvent(s)}
	events = forcedFinalNotice(s, events)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// Pass ends the active player's turn without acting. Free.
func Pass(repo storage.Repository, cache *content.Cache, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, _, err := requireTurn(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	events := advanceTurn(s, cache)
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// RevealHouse is the master's narrative override: flip any house face up
// at no PH cost, outside the turn order.
func RevealHouse(repo storage.Repository, key, masterID, houseID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if s.MasterID != masterID {
		return nil, nil, ErrNotMaster
	}
	if s.GameOver {
		return nil, nil, ErrGameFinished
	}
	house := s.House(houseID)
	if house == nil {
		return nil, nil, ErrUnknownHouse
	}
	house.Revealed = true

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, []notify.Event{stateEvent(s)}, nil
}
