package engine

import (
	"errors"
	"fmt"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

// ContentSource resolves static hint content. Implementations must be
// non-blocking: lookups happen inside a session's critical section.
type ContentSource interface {
	Fragment(index int, tier game.Tier) (game.FragmentVariant, error)
	HouseCardFront(houseID string) (string, error)
}

var (
	ErrUnknownHouse      = errors.New("unknown house")
	ErrRiddlePending     = errors.New("a riddle submission is already pending")
	ErrNoPendingRiddle   = errors.New("no riddle submission is pending")
	ErrHouseNotRetryable = errors.New("house was never resolved or is not revealed")
	ErrPoolExhausted     = errors.New("fragment pool exhausted: a house drew more than once")
)

// SubmitRiddle charges the house's riddle cost (with event and hero
// discounts) and records the pending submission. The cost is paid here,
// at submission time; confirmation is free. Returns whether the siren's
// once-per-game subtle-hint signal fired alongside the submission.
func SubmitRiddle(s *game.Session, p *game.Player, houseID string) (sirenSignal bool, err error) {
	house := s.House(houseID)
	if house == nil {
		return false, ErrUnknownHouse
	}
	if s.PendingRiddle != nil {
		return false, ErrRiddlePending
	}
	if _, err := Debit(s, ActionResolveRiddle, p, house.BaseCost); err != nil {
		return false, err
	}
	s.PendingRiddle = &game.PendingRiddle{
		HouseID:  houseID,
		BaseCost: house.BaseCost,
		PlayerID: p.PlayerID,
	}
	if p.Hero == game.HeroSiren && !p.HeroAbilityUsed {
		p.HeroAbilityUsed = true
		sirenSignal = true
	}
	return sirenSignal, nil
}

// SubmitRetry charges the flat retry surcharge and records a retry
// submission. Only a house that already produced at least one confirmed
// result and is currently revealed can be retried; no discount applies.
func SubmitRetry(s *game.Session, p *game.Player, houseID string) error {
	house := s.House(houseID)
	if house == nil {
		return ErrUnknownHouse
	}
	if s.PendingRiddle != nil {
		return ErrRiddlePending
	}
	if !house.ResolvedOnce || !house.Revealed {
		return ErrHouseNotRetryable
	}
	if _, err := Debit(s, ActionRetryRiddle, p, 0); err != nil {
		return err
	}
	s.PendingRiddle = &game.PendingRiddle{
		HouseID:  houseID,
		BaseCost: house.BaseCost,
		PlayerID: p.PlayerID,
		IsRetry:  true,
	}
	return nil
}

// RiddleResult is the outcome of confirming a pending riddle.
type RiddleResult struct {
	HouseID  string
	PlayerID string
	Quality  game.RiddleQuality
	// Card is nil when the house yields no hint (the center house).
	Card        *game.HintCard
	CardCreated bool
}

// ConfirmRiddle applies the master's quality verdict to the pending
// submission. For hint-yielding houses it binds a fragment index to the
// house (drawing from the no-repetition pool on first confirmation) and
// creates or overwrites the house's hint card at the earned tier. Content
// is fetched before any session state changes so a lookup failure leaves
// the pending riddle intact.
func ConfirmRiddle(s *game.Session, quality game.RiddleQuality, content ContentSource) (*RiddleResult, error) {
	pending := s.PendingRiddle
	if pending == nil {
		return nil, ErrNoPendingRiddle
	}
	house := s.House(pending.HouseID)
	if house == nil {
		return nil, fmt.Errorf("pending riddle references %s: %w", pending.HouseID, ErrUnknownHouse)
	}

	result := &RiddleResult{
		HouseID:  pending.HouseID,
		PlayerID: pending.PlayerID,
		Quality:  quality,
	}

	if pending.HouseID == game.CenterHouseID {
		s.PendingRiddle = nil
		house.ResolvedOnce = true
		return result, nil
	}

	tier := quality.Tier()

	// Peek the fragment binding without mutating the deck yet.
	index, assigned := s.HintDeck.AssignedByHouse[pending.HouseID]
	if !assigned {
		if len(s.HintDeck.DrawPile) == 0 {
			// Eight houses, eight fragments: running dry mid-match means
			// the draw-without-replacement invariant was broken upstream.
			return nil, ErrPoolExhausted
		}
		index = s.HintDeck.DrawPile[0]
	}

	variant, err := content.Fragment(index, tier)
	if err != nil {
		return nil, err
	}
	front, err := content.HouseCardFront(pending.HouseID)
	if err != nil {
		return nil, err
	}

	// Content resolved; mutate.
	if !assigned {
		s.HintDeck.DrawPile = s.HintDeck.DrawPile[1:]
		if s.HintDeck.AssignedByHouse == nil {
			s.HintDeck.AssignedByHouse = make(map[string]int)
		}
		s.HintDeck.AssignedByHouse[pending.HouseID] = index
	}

	if card := s.HintCardByHouse(pending.HouseID); card != nil {
		card.Tier = tier
		card.Text = variant.Text
		card.Citation = variant.Citation
		card.FrontAsset = front
		card.FragmentIndex = index
		result.Card = card
	} else {
		s.HintCardSeq++
		s.HintCards = append(s.HintCards, game.HintCard{
			ID:            fmt.Sprintf("hint_%d", s.HintCardSeq),
			HouseID:       pending.HouseID,
			Tier:          tier,
			Text:          variant.Text,
			Citation:      variant.Citation,
			FrontAsset:    front,
			FragmentIndex: index,
			Order:         game.HouseOrder(pending.HouseID),
		})
		result.Card = &s.HintCards[len(s.HintCards)-1]
		result.CardCreated = true
	}

	house.ResolvedOnce = true
	s.PendingRiddle = nil
	return result, nil
}
