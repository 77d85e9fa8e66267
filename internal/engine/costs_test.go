package engine

import (
	"errors"
	"testing"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

func TestDebitBaseCosts(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]

	paid, err := Debit(s, ActionMove, p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 1 || s.PointPool != 39 {
		t.Fatalf("move: paid=%d pool=%d, want 1/39", paid, s.PointPool)
	}

	paid, err = Debit(s, ActionLongJump, p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 2 || s.PointPool != 37 {
		t.Fatalf("jump: paid=%d pool=%d, want 2/37", paid, s.PointPool)
	}

	paid, err = Debit(s, ActionExplore, p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 1 || s.PointPool != 36 {
		t.Fatalf("explore: paid=%d pool=%d, want 1/36", paid, s.PointPool)
	}

	paid, err = Debit(s, ActionRetryRiddle, p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 2 || s.PointPool != 34 {
		t.Fatalf("retry: paid=%d pool=%d, want 2/34", paid, s.PointPool)
	}
}

func TestDebitInsufficientPoolDoesNotMutate(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	s.PointPool = 1

	_, err := Debit(s, ActionLongJump, p, 0)
	if !errors.Is(err, ErrInsufficientPH) {
		t.Fatalf("expected ErrInsufficientPH, got %v", err)
	}
	if s.PointPool != 1 {
		t.Fatalf("pool mutated on rejection: %d", s.PointPool)
	}
}

func TestMoveDeltaEventNeverGoesNegative(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{MoveDelta: -3}}

	if c := Cost(s, ActionMove, p, 0); c != 0 {
		t.Fatalf("move cost should floor at 0, got %d", c)
	}

	s.Active.Effects.MoveDelta = 1
	if c := Cost(s, ActionMove, p, 0); c != 2 {
		t.Fatalf("move cost with +1 delta should be 2, got %d", c)
	}
}

func TestEventFreeMoveIsPerPlayer(t *testing.T) {
	s := newTestSession("Ana", "Bruno")
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{FirstMoveFree: true}}

	for i := range s.Players {
		p := &s.Players[i]
		paid, err := Debit(s, ActionMove, p, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid != 0 {
			t.Fatalf("player %d first move should be free, paid %d", i, paid)
		}
		paid, err = Debit(s, ActionMove, p, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid != 1 {
			t.Fatalf("player %d second move should cost 1, paid %d", i, paid)
		}
	}
	if s.PointPool != 38 {
		t.Fatalf("pool should be 38, got %d", s.PointPool)
	}
}

func TestEventFreeMovePreferredOverHeroGrant(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	p.HeroFreeMovePending = true
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{FirstMoveFree: true}}

	if _, err := Debit(s, ActionMove, p, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.EventFreeMoveUsed {
		t.Fatalf("event grant should be consumed first")
	}
	if !p.HeroFreeMovePending {
		t.Fatalf("hero grant should survive while the event grant is available")
	}

	if _, err := Debit(s, ActionMove, p, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HeroFreeMovePending {
		t.Fatalf("hero grant should be consumed second")
	}
	if s.PointPool != 40 {
		t.Fatalf("both moves free, pool should be untouched, got %d", s.PointPool)
	}
}

func TestFirstRiddleDiscountIsSessionGlobalOnce(t *testing.T) {
	s := newTestSession("Ana", "Bruno")
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{FirstRiddleDiscount: -1}}

	paid, err := Debit(s, ActionResolveRiddle, &s.Players[0], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 1 {
		t.Fatalf("first riddle should be discounted to 1, paid %d", paid)
	}
	paid, err = Debit(s, ActionResolveRiddle, &s.Players[1], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 2 {
		t.Fatalf("discount must not apply twice, paid %d", paid)
	}
}

func TestHeroRiddleDeltaConsumedOnResolve(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	p.HeroRiddleDelta = -1

	paid, err := Debit(s, ActionResolveRiddle, p, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid != 2 {
		t.Fatalf("dwarf discount should apply, paid %d", paid)
	}
	if p.HeroRiddleDelta != 0 {
		t.Fatalf("dwarf discount should be consumed")
	}
	if c := Cost(s, ActionResolveRiddle, p, 3); c != 3 {
		t.Fatalf("later riddle should cost full 3, got %d", c)
	}
}

func TestJumpCostEventOverride(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{JumpCost: intPtr(1)}}

	if c := Cost(s, ActionLongJump, p, 0); c != 1 {
		t.Fatalf("jump cost should be overridden to 1, got %d", c)
	}
}

func TestRetrySurchargeIgnoresDiscounts(t *testing.T) {
	s := newTestSession("Ana")
	p := &s.Players[0]
	p.HeroRiddleDelta = -1
	s.Active = &game.EventCard{Name: "x", Effects: game.EventEffects{FirstRiddleDiscount: -1}}

	if c := Cost(s, ActionRetryRiddle, p, 0); c != 2 {
		t.Fatalf("retry must stay flat 2, got %d", c)
	}
}
