package engine

import (
	"math/rand"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// EventSource resolves event card names drawn from the session's deck.
type EventSource interface {
	Event(name string) (game.EventCard, bool)
}

// ShuffleStrings is a uniform Fisher-Yates shuffle, used for the event
// deck at session creation.
func ShuffleStrings(deck []string) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// ShuffleFragmentPile returns a shuffled permutation of the fragment
// indices 1..n for the hint deck's draw pile.
func ShuffleFragmentPile(n int) []int {
	pile := make([]int, n)
	for i := range pile {
		pile[i] = i + 1
	}
	for i := len(pile) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		pile[i], pile[j] = pile[j], pile[i]
	}
	return pile
}

// StartRound deals the next event card (no replacement, no reshuffle; an
// exhausted deck simply leaves the round without an event) and clears the
// per-round one-shot trackers so the new round starts clean.
func StartRound(s *game.Session, events EventSource) {
	s.Active = nil
	if len(s.EventDeck) > 0 {
		name := s.EventDeck[0]
		s.EventDeck = s.EventDeck[1:]
		if card, ok := events.Event(name); ok {
			s.Active = &card
		}
	}
	for i := range s.Players {
		s.Players[i].EventFreeMoveUsed = false
	}
}
