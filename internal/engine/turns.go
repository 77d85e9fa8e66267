package engine

import (
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// ActivePlayer returns the player whose turn it is, or nil for an empty
// roster.
func ActivePlayer(s *game.Session) *game.Player {
	if len(s.Players) == 0 {
		return nil
	}
	if s.ActivePlayerIndex < 0 || s.ActivePlayerIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.ActivePlayerIndex]
}

// NextTurn advances the active player after a turn-consuming action. The
// event stays in effect for the whole round: the round (and the event)
// only advance when the turn wraps back to the start of the order, which
// with a single player means every turn. Returns whether a new round
// started. No-op on an empty roster.
func NextTurn(s *game.Session, events EventSource) (wrapped bool) {
	if len(s.Players) == 0 {
		return false
	}
	previous := s.ActivePlayerIndex
	s.ActivePlayerIndex = (s.ActivePlayerIndex + 1) % len(s.Players)
	if s.ActivePlayerIndex > previous {
		return false
	}
	s.Round++
	StartRound(s, events)
	return true
}
