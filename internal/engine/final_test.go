package engine

import (
	"errors"
	"testing"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

func collectCards(t *testing.T, s *game.Session, houses ...string) []string {
	t.Helper()
	p := &s.Players[0]
	ids := make([]string, 0, len(houses))
	for _, h := range houses {
		if _, err := SubmitRiddle(s, p, h); err != nil {
			t.Fatalf("submit %s: %v", h, err)
		}
		result, err := ConfirmRiddle(s, game.QualityOptimal, stubContent{})
		if err != nil {
			t.Fatalf("confirm %s: %v", h, err)
		}
		ids = append(ids, result.Card.ID)
	}
	return ids
}

func TestPlaceHintAssemblesTextInSlotOrder(t *testing.T) {
	s := newTestSession("Ana")
	cards := collectCards(t, s, "C2", "C3")

	if err := PlaceHint(s, cards[1], 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := PlaceHint(s, cards[0], 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := s.HintCardByID(cards[1]).Text + " " + s.HintCardByID(cards[0]).Text
	if s.AssembledText != want {
		t.Fatalf("assembled %q, want %q", s.AssembledText, want)
	}
}

func TestCardOccupiesAtMostOneSlot(t *testing.T) {
	s := newTestSession("Ana")
	cards := collectCards(t, s, "C2")

	if err := PlaceHint(s, cards[0], 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := PlaceHint(s, cards[0], 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	occupied := 0
	for i := range s.FinalSlots {
		if s.FinalSlots[i].CardID == cards[0] {
			occupied++
			if s.FinalSlots[i].SlotIndex != 5 {
				t.Fatalf("card should live in slot 5, found in %d", s.FinalSlots[i].SlotIndex)
			}
		}
	}
	if occupied != 1 {
		t.Fatalf("card occupies %d slots, want 1", occupied)
	}
}

func TestRemoveHintClearsSlot(t *testing.T) {
	s := newTestSession("Ana")
	cards := collectCards(t, s, "C2")

	if err := PlaceHint(s, cards[0], 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RemoveHint(s, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FinalSlots[2].CardID != "" || s.AssembledText != "" {
		t.Fatalf("slot not cleared: %+v text=%q", s.FinalSlots[2], s.AssembledText)
	}

	if err := RemoveHint(s, 99); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if err := PlaceHint(s, "nope", 0); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestFinalUnavailableUntilSlotsFullOrPoolEmpty(t *testing.T) {
	s := newTestSession("Ana")

	if _, err := ResolveFinal(s, "x", "x"); !errors.Is(err, ErrFinalNotAvailable) {
		t.Fatalf("expected ErrFinalNotAvailable, got %v", err)
	}

	s.PointPool = 0
	outcome, err := ResolveFinal(s, "wrong", "Herança Diamante")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.OutcomeLoss || !s.GameOver {
		t.Fatalf("forced attempt with wrong answer must lose, got %s", outcome)
	}
}

func TestResolveFinalNormalizesAnswer(t *testing.T) {
	s := newTestSession("Ana")
	s.PointPool = 0

	outcome, err := ResolveFinal(s, "  herança   DIAMANTE ", "Herança Diamante")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.OutcomeWin {
		t.Fatalf("normalized answer should win, got %s", outcome)
	}
}

func TestOutcomeIsTerminal(t *testing.T) {
	s := newTestSession("Ana")
	s.PointPool = 0
	if _, err := ResolveFinal(s, "wrong", "right"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcome, err := ResolveFinal(s, "right", "right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.OutcomeLoss {
		t.Fatalf("outcome must not flip after the game ended, got %s", outcome)
	}
}
