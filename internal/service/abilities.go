package service

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/engine"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/notify"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/storage"
)

// UseAbility activates the active player's once-per-game hero ability.
// Abilities do not consume the turn, but only the player whose turn it is
// may fire one.
func UseAbility(repo storage.Repository, key, playerID string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	out, err := engine.UseAbility(s, p)
	if err != nil {
		return nil, nil, err
	}

	var events []notify.Event
	switch out.Kind {
	case game.AbilitySubtleHint:
		// The signal is public; the hint itself travels by voice.
		events = append(events, notify.Broadcast(s.Key, notify.EventSubtleHintSignal, map[string]interface{}{
			"player_id": p.PlayerID,
		}))
	case game.AbilityRevealCosts:
		// Phase 1 only: the offer is private to the witch.
		events = append(events, notify.To(s.Key, p.PlayerID, notify.EventWitchOffer, map[string]interface{}{
			"house_ids": out.OfferedHouses,
		}))
	default:
		events = append(events, notify.Broadcast(s.Key, notify.EventAbilityUsed, map[string]interface{}{
			"player_id": p.PlayerID,
			"hero":      p.Hero,
			"kind":      out.Kind,
		}))
	}

	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}

// WitchReveal completes the witch's two-phase peek: the chosen houses
// from the standing offer have their costs revealed to her alone, and the
// once-per-game flag is spent.
func WitchReveal(repo storage.Repository, key, playerID string, houseIDs []string) (*game.Session, []notify.Event, error) {
	unlock := lockSession(key)
	defer unlock()

	s, p, err := requireActivePlayer(repo, key, playerID)
	if err != nil {
		return nil, nil, err
	}

	costs, err := engine.WitchReveal(s, p, houseIDs)
	if err != nil {
		return nil, nil, err
	}

	events := []notify.Event{
		notify.To(s.Key, p.PlayerID, notify.EventHouseCostsRevealed, map[string]interface{}{
			"costs": costs,
		}),
		notify.Broadcast(s.Key, notify.EventAbilityUsed, map[string]interface{}{
			"player_id": p.PlayerID,
			"hero":      p.Hero,
			"kind":      game.AbilityRevealCosts,
		}),
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, nil, err
	}
	return s, events, nil
}
