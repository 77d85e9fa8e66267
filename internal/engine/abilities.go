package engine

import (
	"errors"
	"math/rand"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

var (
	ErrNoAbility          = errors.New("hero has no ability")
	ErrAbilityAlreadyUsed = errors.New("hero ability already used this game")
	ErrNoHiddenHouses     = errors.New("no hidden houses left to peek at")
	ErrOfferMismatch      = errors.New("selection does not match the pending offer")
)

// AbilityOutcome is what activating a hero ability produced. Exactly one
// of the effect fields is meaningful, keyed by Kind.
type AbilityOutcome struct {
	Kind game.AbilityKind
	// OfferedHouses is the witch's phase-1 selection: the hidden houses
	// the player may pick from in phase 2.
	OfferedHouses []string
	// Consumed reports whether the once-per-game flag was spent. The
	// witch's flag is only spent at phase 2.
	Consumed bool
}

const witchOfferSize = 2

// UseAbility activates a player's once-per-game hero ability. The dwarf
// arms a riddle discount, the human a free move, the siren signals the
// room, and the witch starts her two-phase cost peek (the flag stays
// unspent until phase 2 completes).
func UseAbility(s *game.Session, p *game.Player) (*AbilityOutcome, error) {
	ability, ok := game.AbilityFor(p.Hero)
	if !ok {
		return nil, ErrNoAbility
	}
	if p.HeroAbilityUsed {
		return nil, ErrAbilityAlreadyUsed
	}

	out := &AbilityOutcome{Kind: ability.Kind}
	switch ability.Kind {
	case game.AbilityRiddleDiscount:
		p.HeroRiddleDelta = ability.RiddleCostDelta
		p.HeroAbilityUsed = true
		out.Consumed = true
	case game.AbilityFreeMove:
		p.HeroFreeMovePending = true
		p.HeroAbilityUsed = true
		out.Consumed = true
	case game.AbilitySubtleHint:
		p.HeroAbilityUsed = true
		out.Consumed = true
	case game.AbilityRevealCosts:
		offer, err := witchOffer(s, p)
		if err != nil {
			return nil, err
		}
		out.OfferedHouses = offer
	}
	return out, nil
}

// witchOffer reserves 1-2 random hidden, non-center houses for the
// requesting player. A repeated phase 1 by the same player re-rolls the
// offer.
func witchOffer(s *game.Session, p *game.Player) ([]string, error) {
	hidden := s.HiddenHouses()
	if len(hidden) == 0 {
		return nil, ErrNoHiddenHouses
	}
	rand.Shuffle(len(hidden), func(i, j int) {
		hidden[i], hidden[j] = hidden[j], hidden[i]
	})
	n := witchOfferSize
	if len(hidden) < n {
		n = len(hidden)
	}
	ids := make([]string, 0, n)
	for _, h := range hidden[:n] {
		ids = append(ids, h.ID)
	}
	s.Offer = &game.WitchOffer{PlayerID: p.PlayerID, HouseIDs: ids}
	return ids, nil
}

// RevealedCost is one privately revealed house cost.
type RevealedCost struct {
	HouseID  string `json:"house_id"`
	BaseCost int    `json:"base_cost"`
}

// WitchReveal completes the witch's two-phase ability: the chosen houses
// must be 1-2 items, a subset of the phase-1 offer, all still hidden and
// never the center house, and both phases must belong to the same player.
// On success it consumes the once-per-game flag and clears the offer;
// any violation leaves the session untouched.
func WitchReveal(s *game.Session, p *game.Player, houseIDs []string) ([]RevealedCost, error) {
	if p.Hero != game.HeroWitch {
		return nil, ErrNoAbility
	}
	if p.HeroAbilityUsed {
		return nil, ErrAbilityAlreadyUsed
	}
	offer := s.Offer
	if offer == nil || offer.PlayerID != p.PlayerID {
		return nil, ErrOfferMismatch
	}
	if len(houseIDs) < 1 || len(houseIDs) > witchOfferSize {
		return nil, ErrOfferMismatch
	}

	offered := make(map[string]struct{}, len(offer.HouseIDs))
	for _, id := range offer.HouseIDs {
		offered[id] = struct{}{}
	}

	costs := make([]RevealedCost, 0, len(houseIDs))
	seen := make(map[string]struct{}, len(houseIDs))
	for _, id := range houseIDs {
		if id == game.CenterHouseID {
			return nil, ErrOfferMismatch
		}
		if _, dup := seen[id]; dup {
			return nil, ErrOfferMismatch
		}
		seen[id] = struct{}{}
		if _, ok := offered[id]; !ok {
			return nil, ErrOfferMismatch
		}
		house := s.House(id)
		if house == nil || house.Revealed {
			return nil, ErrOfferMismatch
		}
		costs = append(costs, RevealedCost{HouseID: id, BaseCost: house.BaseCost})
	}

	p.HeroAbilityUsed = true
	s.Offer = nil
	return costs, nil
}
