// Package content is the read side of the static game data: final-riddle
// fragment lines, house card fronts and base costs, event cards and the
// final challenge. It is built once at startup from the validated config
// and never mutated afterwards, so the engine can consult it without
// blocking inside a session's critical section.
package content

import (
	"fmt"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/config"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

type Cache struct {
	initialPH int
	fragments map[int]map[game.Tier]game.FragmentVariant
	houses    map[string]game.HouseDef
	events    map[string]game.EventCard
	deckNames []string
	final     game.FinalChallenge
}

// New builds the content cache from a loaded configuration. LoadConfig
// already guarantees shape; New only wires the lookup maps.
func New(cfg *config.LoadedConfig) *Cache {
	c := &Cache{
		initialPH: cfg.InitialPH,
		fragments: make(map[int]map[game.Tier]game.FragmentVariant, len(cfg.Fragments)),
		houses:    make(map[string]game.HouseDef, len(cfg.Houses)),
		events:    make(map[string]game.EventCard, len(cfg.Events)),
		deckNames: make([]string, 0, len(cfg.Events)),
		final:     cfg.Final,
	}
	for _, f := range cfg.Fragments {
		c.fragments[f.Index] = map[game.Tier]game.FragmentVariant{
			game.TierEasy: f.Easy,
			game.TierHard: f.Hard,
		}
	}
	for _, h := range cfg.Houses {
		c.houses[h.ID] = h
	}
	for _, e := range cfg.Events {
		c.events[e.Name] = e
		c.deckNames = append(c.deckNames, e.Name)
	}
	return c
}

// InitialPH is the point pool a fresh session starts with.
func (c *Cache) InitialPH() int { return c.initialPH }

// Fragment returns the text and citation for a fragment index at the
// given tier. A miss is a configuration/integrity error, never a normal
// game outcome.
func (c *Cache) Fragment(index int, tier game.Tier) (game.FragmentVariant, error) {
	variants, ok := c.fragments[index]
	if !ok {
		return game.FragmentVariant{}, fmt.Errorf("final riddle fragment not found: index=%d", index)
	}
	v, ok := variants[tier]
	if !ok {
		return game.FragmentVariant{}, fmt.Errorf("final riddle fragment %d has no '%s' variant", index, tier)
	}
	return v, nil
}

// HouseCardFront returns the decorative front asset for a house's hint
// card.
func (c *Cache) HouseCardFront(houseID string) (string, error) {
	h, ok := c.houses[houseID]
	if !ok || h.CardFront == "" {
		return "", fmt.Errorf("hint card front not configured for house %s", houseID)
	}
	return h.CardFront, nil
}

// BaseCost returns the fixed resolution cost for a house.
func (c *Cache) BaseCost(houseID string) (int, error) {
	h, ok := c.houses[houseID]
	if !ok {
		return 0, fmt.Errorf("base cost not configured for house %s", houseID)
	}
	return h.BaseCost, nil
}

// Houses returns the configured house definitions in board order.
func (c *Cache) Houses() []game.HouseDef {
	out := make([]game.HouseDef, 0, len(c.houses))
	for _, id := range game.AllHouseIDs() {
		if h, ok := c.houses[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Event returns the event card with the given name.
func (c *Cache) Event(name string) (game.EventCard, bool) {
	e, ok := c.events[name]
	return e, ok
}

// EventDeckNames returns the full set of event card names, in config
// order. Sessions shuffle their own copy at creation.
func (c *Cache) EventDeckNames() []string {
	out := make([]string, len(c.deckNames))
	copy(out, c.deckNames)
	return out
}

// FinalChallenge returns the end-game puzzle configuration.
func (c *Cache) FinalChallenge() game.FinalChallenge { return c.final }
