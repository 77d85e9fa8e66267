package engine

import (
	"errors"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// ActionKind is the set of PH-costed actions.
type ActionKind string

const (
	ActionMove          ActionKind = "move"
	ActionExplore       ActionKind = "explore"
	ActionResolveRiddle ActionKind = "resolve_riddle"
	ActionRetryRiddle   ActionKind = "retry_riddle"
	ActionLongJump      ActionKind = "long_jump"
)

const (
	baseMoveCost   = 1
	exploreCost    = 1
	baseJumpCost   = 2
	retrySurcharge = 2
)

// ErrInsufficientPH rejects an action whose cost exceeds the shared pool.
// The rejection never mutates the session.
var ErrInsufficientPH = errors.New("insufficient PH for this action")

// Cost computes the PH cost of an action for a player under the current
// active event and one-shot flags, without mutating anything. houseCost is
// only consulted for ActionResolveRiddle.
func Cost(s *game.Session, kind ActionKind, p *game.Player, houseCost int) int {
	var fx *game.EventEffects
	if s.Active != nil {
		fx = &s.Active.Effects
	}
	switch kind {
	case ActionMove:
		if p != nil && (eventFreeMove(s, p) || p.HeroFreeMovePending) {
			return 0
		}
		cost := baseMoveCost
		if fx != nil {
			cost += fx.MoveDelta
		}
		if cost < 0 {
			cost = 0
		}
		return cost
	case ActionExplore:
		return exploreCost
	case ActionResolveRiddle:
		cost := houseCost
		if fx != nil && fx.FirstRiddleDiscount != 0 && !s.FirstRiddleDiscountUsed {
			cost += fx.FirstRiddleDiscount
		}
		if p != nil {
			cost += p.HeroRiddleDelta
		}
		if cost < 0 {
			cost = 0
		}
		return cost
	case ActionRetryRiddle:
		// Flat surcharge, deliberately outside every discount.
		return retrySurcharge
	case ActionLongJump:
		if fx != nil && fx.JumpCost != nil {
			return *fx.JumpCost
		}
		return baseJumpCost
	default:
		return baseMoveCost
	}
}

// Debit computes the cost, verifies the pool covers it and debits it.
// One-shot flags (event free move, hero free move, hero riddle discount,
// event first-riddle discount) are consumed only after the debit
// succeeds, never speculatively. Returns the amount paid.
func Debit(s *game.Session, kind ActionKind, p *game.Player, houseCost int) (int, error) {
	cost := Cost(s, kind, p, houseCost)
	if s.PointPool < cost {
		return 0, ErrInsufficientPH
	}
	s.PointPool -= cost

	switch kind {
	case ActionMove:
		if p == nil {
			break
		}
		// Prefer the round-scoped event grant so the hero's one-time
		// consumable survives for a later round.
		if eventFreeMove(s, p) {
			p.EventFreeMoveUsed = true
		} else if p.HeroFreeMovePending {
			p.HeroFreeMovePending = false
		}
	case ActionResolveRiddle:
		if s.Active != nil && s.Active.Effects.FirstRiddleDiscount != 0 && !s.FirstRiddleDiscountUsed {
			s.FirstRiddleDiscountUsed = true
		}
		if p != nil && p.HeroRiddleDelta != 0 {
			p.HeroRiddleDelta = 0
		}
	}
	return cost, nil
}

// eventFreeMove reports whether the active event grants this player a
// still-unused free move this round.
func eventFreeMove(s *game.Session, p *game.Player) bool {
	return s.Active != nil && s.Active.Effects.FirstMoveFree && !p.EventFreeMoveUsed
}
