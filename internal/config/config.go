package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

type rawConfig struct {
	InitialPH int                 `json:"initial_ph"`
	Houses    []game.HouseDef     `json:"houses"`
	Events    []game.EventCard    `json:"events"`
	Fragments []game.FragmentDef  `json:"final_riddle_fragments"`
	Final     game.FinalChallenge `json:"final_challenge"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig is the validated game content plus the server address to
// bind to.
type LoadedConfig struct {
	InitialPH     int
	Houses        []game.HouseDef
	Events        []game.EventCard
	Fragments     []game.FragmentDef
	Final         game.FinalChallenge
	ServerAddress string
}

const fragmentCount = 8

// LoadConfig reads and cross-validates the content configuration file.
// Any violation is a hard error: the game cannot run on partial content.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.InitialPH <= 0 {
		return nil, fmt.Errorf("config file %s: initial_ph must be positive", path)
	}

	if err := validateHouses(path, rc.Houses); err != nil {
		return nil, err
	}
	if err := validateEvents(path, rc.Events); err != nil {
		return nil, err
	}
	if err := validateFragments(path, rc.Fragments); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rc.Final.Answer) == "" {
		return nil, fmt.Errorf("config file %s: final_challenge.answer is required", path)
	}

	addr := ":3001"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		InitialPH:     rc.InitialPH,
		Houses:        rc.Houses,
		Events:        rc.Events,
		Fragments:     rc.Fragments,
		Final:         rc.Final,
		ServerAddress: addr,
	}, nil
}

func validateHouses(path string, houses []game.HouseDef) error {
	byID := make(map[string]game.HouseDef, len(houses))
	for _, h := range houses {
		if _, _, ok := game.HouseCoords(h.ID); !ok {
			return fmt.Errorf("config file %s: invalid house id '%s'", path, h.ID)
		}
		if h.Name == "" {
			return fmt.Errorf("config file %s: house %s missing 'name'", path, h.ID)
		}
		if h.BaseCost < 0 || h.BaseCost > 3 {
			return fmt.Errorf("config file %s: house %s base_cost %d out of range 0..3", path, h.ID, h.BaseCost)
		}
		if _, dup := byID[h.ID]; dup {
			return fmt.Errorf("config file %s: duplicate house id '%s'", path, h.ID)
		}
		byID[h.ID] = h
	}
	for _, id := range game.AllHouseIDs() {
		h, ok := byID[id]
		if !ok {
			return fmt.Errorf("config file %s: house %s is not configured", path, id)
		}
		// Every hint-yielding house needs a card front for its hint card.
		if id != game.CenterHouseID && strings.TrimSpace(h.CardFront) == "" {
			return fmt.Errorf("config file %s: house %s missing 'card_front'", path, id)
		}
	}
	return nil
}

func validateEvents(path string, events []game.EventCard) error {
	if len(events) == 0 {
		return fmt.Errorf("config file %s: events is empty (provide an 'events' array)", path)
	}
	seen := make(map[string]struct{}, len(events))
	for _, e := range events {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name == "" {
			return fmt.Errorf("config file %s: event entry missing 'name'", path)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("config file %s: duplicate event name '%s'", path, e.Name)
		}
		seen[name] = struct{}{}
		if e.Effects.JumpCost != nil && *e.Effects.JumpCost < 0 {
			return fmt.Errorf("config file %s: event '%s' jump_cost must be >= 0", path, e.Name)
		}
	}
	return nil
}

func validateFragments(path string, fragments []game.FragmentDef) error {
	if len(fragments) != fragmentCount {
		return fmt.Errorf("config file %s: expected %d final_riddle_fragments, found %d", path, fragmentCount, len(fragments))
	}
	seen := make(map[int]struct{}, len(fragments))
	for _, f := range fragments {
		if f.Index < 1 || f.Index > fragmentCount {
			return fmt.Errorf("config file %s: fragment index %d out of range 1..%d", path, f.Index, fragmentCount)
		}
		if _, dup := seen[f.Index]; dup {
			return fmt.Errorf("config file %s: duplicate fragment index %d", path, f.Index)
		}
		seen[f.Index] = struct{}{}
		for _, v := range []struct {
			tier game.Tier
			fv   game.FragmentVariant
		}{{game.TierEasy, f.Easy}, {game.TierHard, f.Hard}} {
			if v.fv.Text == "" || v.fv.Citation == "" {
				return fmt.Errorf("config file %s: fragment %d has an incomplete '%s' variant", path, f.Index, v.tier)
			}
		}
	}
	return nil
}
