package engine

import (
	"fmt"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

type stubEvents map[string]game.EventCard

func (m stubEvents) Event(name string) (game.EventCard, bool) {
	e, ok := m[name]
	return e, ok
}

type stubContent struct{}

func (stubContent) Fragment(index int, tier game.Tier) (game.FragmentVariant, error) {
	return game.FragmentVariant{
		Text:     fmt.Sprintf("fragment %d %s", index, tier),
		Citation: fmt.Sprintf("source %d", index),
	}, nil
}

func (stubContent) HouseCardFront(houseID string) (string, error) {
	return "/assets/tips/" + houseID + ".png", nil
}

var testHouseCosts = map[string]int{
	"C1": 2, "C2": 1, "C3": 1,
	"C4": 2, "C5": 0, "C6": 3,
	"C7": 1, "C8": 3, "C9": 1,
}

func newTestSession(names ...string) *game.Session {
	defs := make([]game.HouseDef, 0, 9)
	for _, id := range game.AllHouseIDs() {
		defs = append(defs, game.HouseDef{
			ID:        id,
			Name:      "Casa " + id,
			BaseCost:  testHouseCosts[id],
			CardFront: "/assets/tips/" + id + ".png",
		})
	}
	s := &game.Session{
		Key:       "test-session",
		PointPool: 40,
		Round:     1,
		Started:   true,
		Board:     game.BuildBoard(defs),
		HintDeck: game.HintDeck{
			DrawPile:        []int{1, 2, 3, 4, 5, 6, 7, 8},
			AssignedByHouse: make(map[string]int),
		},
	}
	for i, name := range names {
		s.Players = append(s.Players, game.Player{
			PlayerID:  fmt.Sprintf("p%d", i+1),
			Name:      name,
			Position:  game.CenterHouseID,
			TurnOrder: i,
		})
	}
	slots := make([]game.HintSlot, 8)
	for i := range slots {
		slots[i] = game.HintSlot{SlotIndex: i}
	}
	s.FinalSlots = slots
	return s
}

func intPtr(v int) *int { return &v }
