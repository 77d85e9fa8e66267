package engine

import (
	"errors"
	"testing"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

func TestSubmitRiddleChargesAtSubmission(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	p.Position = "C6"

	if _, err := SubmitRiddle(s, p, "C6"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PointPool != 37 {
		t.Fatalf("C6 costs 3, pool should be 37, got %d", s.PointPool)
	}
	if s.PendingRiddle == nil || s.PendingRiddle.HouseID != "C6" || s.PendingRiddle.IsRetry {
		t.Fatalf("pending riddle not recorded: %+v", s.PendingRiddle)
	}
}

func TestSubmitRiddleBlockedWhilePending(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	if _, err := SubmitRiddle(s, p, "C2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SubmitRiddle(s, p, "C3"); !errors.Is(err, ErrRiddlePending) {
		t.Fatalf("expected ErrRiddlePending, got %v", err)
	}
}

func TestSubmitRiddleInsufficientPoolKeepsState(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	s.PointPool = 2

	if _, err := SubmitRiddle(s, p, "C6"); !errors.Is(err, ErrInsufficientPH) {
		t.Fatalf("expected ErrInsufficientPH, got %v", err)
	}
	if s.PointPool != 2 || s.PendingRiddle != nil {
		t.Fatalf("rejection must not mutate: pool=%d pending=%v", s.PointPool, s.PendingRiddle)
	}
}

func TestSirenSignalFiresOnceWithSubmission(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	p.Hero = game.HeroSiren

	signal, err := SubmitRiddle(s, p, "C2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !signal {
		t.Fatalf("first submission should carry the siren signal")
	}
	if _, err := ConfirmRiddle(s, game.QualityPoor, stubContent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signal, err = SubmitRiddle(s, p, "C2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signal {
		t.Fatalf("signal is once per game")
	}
}

func TestConfirmRiddleCreatesCardAtEarnedTier(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	if _, err := SubmitRiddle(s, p, "C1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := ConfirmRiddle(s, game.QualityOptimal, stubContent{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.CardCreated || result.Card == nil {
		t.Fatalf("first confirmation should create a card")
	}
	if result.Card.Tier != game.TierEasy {
		t.Fatalf("optimal answer earns the easy tier, got %s", result.Card.Tier)
	}
	if result.Card.HouseID != "C1" || result.Card.Order != 1 {
		t.Fatalf("card bound wrong: %+v", result.Card)
	}
	if s.PendingRiddle != nil {
		t.Fatalf("pending riddle should be cleared")
	}
	if !s.House("C1").ResolvedOnce {
		t.Fatalf("house should be marked resolved")
	}
}

func TestConfirmWithoutPendingFails(t *testing.T) {
	s := newTestSession("Ana")
	if _, err := ConfirmRiddle(s, game.QualityPoor, stubContent{}); !errors.Is(err, ErrNoPendingRiddle) {
		t.Fatalf("expected ErrNoPendingRiddle, got %v", err)
	}
}

func TestRetryUpgradesCardKeepingFragment(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	if _, err := SubmitRiddle(s, p, "C2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := ConfirmRiddle(s, game.QualityPoor, stubContent{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.House("C2").Revealed = true

	if err := SubmitRetry(s, p, "C2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.PendingRiddle.IsRetry {
		t.Fatalf("retry flag should be set")
	}
	second, err := ConfirmRiddle(s, game.QualityOptimal, stubContent{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.CardCreated {
		t.Fatalf("retry must overwrite, not create")
	}
	if second.Card.ID != first.Card.ID {
		t.Fatalf("card identity must be stable across retries")
	}
	if second.Card.FragmentIndex != first.Card.FragmentIndex {
		t.Fatalf("fragment binding must not re-roll: %d vs %d", second.Card.FragmentIndex, first.Card.FragmentIndex)
	}
	if second.Card.Tier != game.TierEasy {
		t.Fatalf("upgraded card should be easy tier, got %s", second.Card.Tier)
	}
	if len(s.HintCards) != 1 {
		t.Fatalf("still exactly one card, got %d", len(s.HintCards))
	}
}

func TestRetryRequiresResolvedAndRevealed(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	if err := SubmitRetry(s, p, "C2"); !errors.Is(err, ErrHouseNotRetryable) {
		t.Fatalf("unresolved house: expected ErrHouseNotRetryable, got %v", err)
	}
	s.House("C2").ResolvedOnce = true
	if err := SubmitRetry(s, p, "C2"); !errors.Is(err, ErrHouseNotRetryable) {
		t.Fatalf("hidden house: expected ErrHouseNotRetryable, got %v", err)
	}
	s.House("C2").Revealed = true
	if err := SubmitRetry(s, p, "C2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCenterHouseYieldsNoCard(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	if _, err := SubmitRiddle(s, p, game.CenterHouseID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PointPool != 40 {
		t.Fatalf("center house costs 0, pool should stay 40, got %d", s.PointPool)
	}
	result, err := ConfirmRiddle(s, game.QualityOptimal, stubContent{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Card != nil {
		t.Fatalf("center house must not yield a hint card")
	}
	if len(s.HintDeck.DrawPile) != 8 {
		t.Fatalf("draw pile must be untouched, got %d", len(s.HintDeck.DrawPile))
	}
}

func TestDrawWithoutReplacementAcrossHouses(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	houses := []string{"C1", "C2", "C3"}
	seen := make(map[int]string)
	for _, id := range houses {
		if _, err := SubmitRiddle(s, p, id); err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
		result, err := ConfirmRiddle(s, game.QualityPoor, stubContent{})
		if err != nil {
			t.Fatalf("confirm %s: %v", id, err)
		}
		if prev, dup := seen[result.Card.FragmentIndex]; dup {
			t.Fatalf("fragment %d drawn twice (%s and %s)", result.Card.FragmentIndex, prev, id)
		}
		seen[result.Card.FragmentIndex] = id
	}
	if len(s.HintDeck.DrawPile) != 5 {
		t.Fatalf("draw pile should shrink to 5, got %d", len(s.HintDeck.DrawPile))
	}
}

func TestConfirmContentFailureLeavesPendingIntact(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	if _, err := SubmitRiddle(s, p, "C2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := ConfirmRiddle(s, game.QualityOptimal, failingContent{})
	if err == nil {
		t.Fatalf("expected content lookup failure")
	}
	if s.PendingRiddle == nil {
		t.Fatalf("pending riddle must survive a content failure")
	}
	if len(s.HintDeck.DrawPile) != 8 {
		t.Fatalf("draw pile must be untouched, got %d", len(s.HintDeck.DrawPile))
	}
}

type failingContent struct{}

func (failingContent) Fragment(int, game.Tier) (game.FragmentVariant, error) {
	return game.FragmentVariant{}, errors.New("content unavailable")
}

func (failingContent) HouseCardFront(string) (string, error) {
	return "", errors.New("content unavailable")
}
