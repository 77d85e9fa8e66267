package service

import (
	"github.com/google/uuid"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/content"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// maxPlayers matches the hero roster: one of each.
const maxPlayers = 4

// JoinLobby adds a player to an unstarted session. Display names are
// unique per session (case-insensitive) and the join order fixes the turn
// order. Everyone starts at the center house.
func JoinLobby(repo storage.Repository, key, name string) (*game.Session, *game.Player, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, nil, err
	}
	if s.Started {
		return nil, nil, nil, ErrGameAlreadyStarted
	}
	if len(s.Players) >= maxPlayers {
		return nil, nil, nil, ErrLobbyFull
	}
	if s.HasPlayerName(name) {
		return nil, nil, nil, ErrDuplicateName
	}

	s.Players = append(s.Players, game.Player{
		SessionID: s.ID,
		PlayerID:  uuid.NewString(),
		Name:      name,
		Position:  game.CenterHouseID,
		TurnOrder: len(s.Players),
	})
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, nil, err
	}
	p := &s.Players[len(s.Players)-1]
	return s, p, []notify.Event{lobbyEvent(s)}, nil
}

// ChooseHero assigns a hero to a lobby player. Heroes are unique within a
// session; re-choosing replaces the player's previous pick.
func ChooseHero(repo storage.Repository, key, playerID string, hero game.HeroType) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if s.Started {
		return nil, nil, ErrGameAlreadyStarted
	}
	p := s.PlayerByID(playerID)
	if p == nil {
		return nil, nil, ErrPlayerNotInSession
	}
	if !game.ValidHero(hero) {
		return nil, nil, ErrUnknownHero
	}
	for i := range s.Players {
		if s.Players[i].PlayerID != playerID && s.Players[i].Hero == hero {
			return nil, nil, ErrHeroTaken
		}
	}

	p.Hero = hero
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, []notify.Event{lobbyEvent(s)}, nil
}

// LeaveLobby removes a player from an unstarted session and compacts the
// turn order so the remaining players keep their relative positions.
func LeaveLobby(repo storage.Repository, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if s.Started {
		return nil, nil, ErrGameAlreadyStarted
	}
	if s.PlayerByID(playerID) == nil {
		return nil, nil, ErrPlayerNotInSession
	}

	if err := repo.RemovePlayer(s.ID, playerID); err != nil {
		return nil, nil, err
	}
	kept := s.Players[:0]
	for i := range s.Players {
		if s.Players[i].PlayerID != playerID {
			kept = append(kept, s.Players[i])
		}
	}
	s.Players = kept
	for i := range s.Players {
		s.Players[i].TurnOrder = i
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, []notify.Event{lobbyEvent(s)}, nil
}

// StartGame begins the match: every player must have picked a hero. The
// first round starts immediately, dealing the first event card.
func StartGame(repo storage.Repository, cache *content.Cache, key, masterID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, err := loadSession(repo, key)
	if err != nil {
		return nil, nil, err
	}
	if s.MasterID != masterID {
		return nil, nil, ErrNotMaster
	}
	if s.Started {
		return nil, nil, ErrGameAlreadyStarted
	}
	if len(s.Players) == 0 {
		return nil, nil, ErrPlayersNotReady
	}
	for i := range s.Players {
		if s.Players[i].Hero == "" {
			return nil, nil, ErrPlayersNotReady
		}
	}

	s.Started = true
	s.Round = 1
	s.ActivePlayerIndex = 0
	engine.StartRound(s, cache)

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	events := []notify.Event{stateEvent(s), activeEventNotice(s), turnEvent(s)}
	return s, events, nil
}

func lobbyEvent(s *game.Session) notify.Event {
	return notify.Broadcast(s.Key, notify.EventLobbyUpdated, map[string]interface{}{
		"players": s.Players,
		"started": s.Started,
	})
}
