package game

// HeroType identifies a hero archetype. The ids match the physical board
// game material, so the frontend can keep its card art keys.
type HeroType string

const (
	HeroNone   HeroType = ""
	HeroDwarf  HeroType = "Anao"
	HeroHuman  HeroType = "Humano"
	HeroSiren  HeroType = "Sereia"
	HeroWitch  HeroType = "Bruxa"
)

// AbilityKind is what activating a hero ability does. Abilities are a
// closed set dispatched by archetype rather than per-hero behavior types.
type AbilityKind string

const (
	// AbilityRiddleDiscount arms a one-time -1 on the next riddle cost.
	AbilityRiddleDiscount AbilityKind = "riddle_discount"
	// AbilityFreeMove arms a one-time free ordinary move.
	AbilityFreeMove AbilityKind = "free_move"
	// AbilitySubtleHint signals the room that a subtle hint may be given.
	AbilitySubtleHint AbilityKind = "subtle_hint"
	// AbilityRevealCosts starts the witch's two-phase cost peek.
	AbilityRevealCosts AbilityKind = "reveal_costs"
)

// Ability describes the effect of a hero's once-per-game ability.
type Ability struct {
	Kind            AbilityKind
	RiddleCostDelta int
}

// AbilityFor returns the ability descriptor for an archetype. Unknown
// archetypes get no ability (ok=false).
func AbilityFor(h HeroType) (Ability, bool) {
	switch h {
	case HeroDwarf:
		return Ability{Kind: AbilityRiddleDiscount, RiddleCostDelta: -1}, true
	case HeroHuman:
		return Ability{Kind: AbilityFreeMove}, true
	case HeroSiren:
		return Ability{Kind: AbilitySubtleHint}, true
	case HeroWitch:
		return Ability{Kind: AbilityRevealCosts}, true
	default:
		return Ability{}, false
	}
}

// ValidHero reports whether the given archetype is selectable.
func ValidHero(h HeroType) bool {
	_, ok := AbilityFor(h)
	return ok
}
