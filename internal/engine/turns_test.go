package engine

import (
	"testing"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

func TestNextTurnCyclesAndWraps(t *testing.T) {
	s := newTestSession("Ana", "Bruno", "Clara")
	s.EventDeck = []string{"x", "y"}
	events := stubEvents{
		"x": {Name: "x"},
		"y": {Name: "y"},
	}

	if wrapped := NextTurn(s, events); wrapped {
		t.Fatalf("turn 0->1 should not wrap")
	}
	if wrapped := NextTurn(s, events); wrapped {
		t.Fatalf("turn 1->2 should not wrap")
	}
	if wrapped := NextTurn(s, events); !wrapped {
		t.Fatalf("turn 2->0 should wrap")
	}
	if s.Round != 2 {
		t.Fatalf("round should be 2 after wrap, got %d", s.Round)
	}
	if s.Active == nil || s.Active.Name != "x" {
		t.Fatalf("wrap should deal the next event card")
	}
	if len(s.EventDeck) != 1 {
		t.Fatalf("deck should have 1 card left, got %d", len(s.EventDeck))
	}
}

func TestSinglePlayerWrapsEveryTurn(t *testing.T) {
	s := newTestSession("Ana")
	s.EventDeck = []string{"x"}
	events := stubEvents{"x": {Name: "x"}}

	if wrapped := NextTurn(s, events); !wrapped {
		t.Fatalf("single player should wrap on every turn")
	}
	if s.Round != 2 {
		t.Fatalf("round should be 2, got %d", s.Round)
	}
}

func TestStartRoundResetsEventFreeMove(t *testing.T) {
	s := newTestSession("Ana", "Bruno")
	s.Players[0].EventFreeMoveUsed = true
	s.Players[1].EventFreeMoveUsed = true
	s.EventDeck = []string{"x"}

	StartRound(s, stubEvents{"x": {Name: "x"}})
	for i := range s.Players {
		if s.Players[i].EventFreeMoveUsed {
			t.Fatalf("player %d free-move tracker should reset at round start", i)
		}
	}
}

func TestExhaustedDeckLeavesRoundWithoutEvent(t *testing.T) {
	s := newTestSession("Ana")
	s.Active = &game.EventCard{Name: "old"}
	s.EventDeck = nil

	StartRound(s, stubEvents{})
	if s.Active != nil {
		t.Fatalf("exhausted deck should clear the active event")
	}
}

func TestNextTurnEmptyRosterNoop(t *testing.T) {
	s := newTestSession()
	if wrapped := NextTurn(s, stubEvents{}); wrapped {
		t.Fatalf("empty roster should be a no-op")
	}
	if s.Round != 1 {
		t.Fatalf("round should be untouched, got %d", s.Round)
	}
}
