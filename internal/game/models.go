package game

import (
	"strings"

	"gorm.io/gorm"
)

// Outcome is the terminal result of a session. It stays empty until the
// final challenge has been answered.
type Outcome string

const (
	OutcomeUndetermined Outcome = ""
	OutcomeWin          Outcome = "win"
	OutcomeLoss         Outcome = "loss"
)

// RiddleQuality is the master's verdict on a riddle answer.
type RiddleQuality string

const (
	QualityOptimal RiddleQuality = "optimal"
	QualityPoor    RiddleQuality = "poor"
)

// Tier is the difficulty of a final-riddle fragment variant. Optimal
// answers earn the easier line, poor answers the harder one.
type Tier string

const (
	TierEasy Tier = "easy"
	TierHard Tier = "hard"
)

func (q RiddleQuality) Tier() Tier {
	if q == QualityOptimal {
		return TierEasy
	}
	return TierHard
}

// House is one of the nine board cells. The resolution cost is fixed per
// house (0-3) and comes from the content configuration.
type House struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Revealed     bool   `json:"revealed"`
	BaseCost     int    `json:"base_cost"`
	ResolvedOnce bool   `json:"resolved_once"`
}

// Board is the fixed 3x3 grid, row-major, C1 top-left through C9
// bottom-right.
type Board [3][3]*House

// EventEffects is the pure data an event card carries. A zero value means
// the card does not touch that rule.
type EventEffects struct {
	MoveDelta           int  `json:"move_delta"`
	FirstMoveFree       bool `json:"first_move_free"`
	FirstRiddleDiscount int  `json:"first_riddle_discount"`
	JumpCost            *int `json:"jump_cost"`
	// DiscussionBlocked is informational for the clients only; the engine
	// does not enforce it.
	DiscussionBlocked bool `json:"discussion_blocked"`
}

type EventCard struct {
	Name    string       `json:"name"`
	Fluff   string       `json:"fluff"`
	Effects EventEffects `json:"effects"`
}

// PendingRiddle is the single in-flight riddle submission. The PH cost is
// charged when it is created; confirmation only materializes the hint.
type PendingRiddle struct {
	HouseID  string `json:"house_id"`
	BaseCost int    `json:"base_cost"`
	PlayerID string `json:"player_id"`
	IsRetry  bool   `json:"is_retry"`
}

// HintDeck tracks the fragment permutation: indices 1..8 still drawable,
// plus the house->index bindings already made. A house draws at most once
// per match.
type HintDeck struct {
	DrawPile        []int          `json:"draw_pile"`
	AssignedByHouse map[string]int `json:"assigned_by_house"`
}

// HintCard is a collected fragment of the final riddle, bound to the house
// that earned it. Re-earning (via retry) overwrites tier/text in place.
type HintCard struct {
	ID            string `json:"id"`
	HouseID       string `json:"house_id"`
	Tier          Tier   `json:"tier"`
	Text          string `json:"text"`
	Citation      string `json:"citation"`
	FrontAsset    string `json:"front_asset"`
	FragmentIndex int    `json:"fragment_index"`
	// Order is the house's board position (C1=1 .. C9=9), kept for the
	// frontend's drag-and-drop sorting.
	Order int `json:"order"`
}

// HintSlot holds at most one hint card reference. An empty CardID means
// the slot is vacant.
type HintSlot struct {
	SlotIndex int    `json:"slot_index"`
	CardID    string `json:"card_id"`
}

// WitchOffer is the pending phase-1 selection of the witch's two-phase
// ability: the hidden houses the requesting player may pick from.
type WitchOffer struct {
	PlayerID string   `json:"player_id"`
	HouseIDs []string `json:"house_ids"`
}

// Player is one roster entry. Turn order is the join order.
type Player struct {
	gorm.Model
	SessionID uint     `json:"-" gorm:"index"`
	PlayerID  string   `json:"player_id"`
	Name      string   `json:"name"`
	Hero      HeroType `json:"hero"`
	Position  string   `json:"position"`
	TurnOrder int      `json:"turn_order"`

	// One-shot trackers. EventFreeMoveUsed resets every round; the hero
	// flags never reset.
	EventFreeMoveUsed   bool `json:"event_free_move_used"`
	HeroAbilityUsed     bool `json:"hero_ability_used"`
	HeroFreeMovePending bool `json:"hero_free_move_pending"`
	HeroRiddleDelta     int  `json:"hero_riddle_delta"`
}

func (Player) TableName() string { return "session_players" }

// Session is the aggregate root for one match and the sole unit of
// consistency. Complex sub-state is persisted as JSON columns; players are
// association rows so the roster can be pruned individually.
type Session struct {
	gorm.Model
	Key string `json:"session_id" gorm:"column:session_key;uniqueIndex"`
	// MasterID is the master's bearer secret; it is handed out once at
	// creation and never serialized into snapshots.
	MasterID string `json:"-"`

	PointPool int        `json:"ph"`
	Round     int        `json:"round"`
	EventDeck []string   `json:"event_deck" gorm:"serializer:json"`
	Active    *EventCard `json:"active_event" gorm:"serializer:json;column:active_event"`
	Board     Board      `json:"board" gorm:"serializer:json"`
	Players   []Player   `json:"players"`

	Started           bool    `json:"started"`
	ActivePlayerIndex int     `json:"active_player_index"`
	GameOver          bool    `json:"game_over"`
	Outcome           Outcome `json:"outcome"`

	FirstRiddleDiscountUsed bool           `json:"first_riddle_discount_used"`
	PendingRiddle           *PendingRiddle `json:"pending_riddle" gorm:"serializer:json"`
	HintDeck                HintDeck       `json:"hint_deck" gorm:"serializer:json"`
	HintCards               []HintCard     `json:"hint_cards" gorm:"serializer:json"`
	FinalSlots              []HintSlot     `json:"final_slots" gorm:"serializer:json"`
	AssembledText           string         `json:"assembled_text"`
	Offer                   *WitchOffer    `json:"witch_offer" gorm:"serializer:json;column:witch_offer"`

	ForcedFinalNotified bool `json:"forced_final"`
	HintCardSeq         int  `json:"-"`
}

func (Session) TableName() string { return "game_sessions" }

// House returns the board cell for the given id, or nil when the id is
// malformed or the cell was never set.
func (s *Session) House(id string) *House {
	row, col, ok := HouseCoords(id)
	if !ok {
		return nil
	}
	return s.Board[row][col]
}

// PlayerByID returns the roster entry with the given id, or nil.
func (s *Session) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].PlayerID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// HasPlayerName reports whether a display name is already taken,
// case-insensitively.
func (s *Session) HasPlayerName(name string) bool {
	for i := range s.Players {
		if strings.EqualFold(s.Players[i].Name, name) {
			return true
		}
	}
	return false
}

// HintCardByID returns the collected hint card with the given id, or nil.
func (s *Session) HintCardByID(id string) *HintCard {
	for i := range s.HintCards {
		if s.HintCards[i].ID == id {
			return &s.HintCards[i]
		}
	}
	return nil
}

// HintCardByHouse returns the hint card earned by a house, or nil.
func (s *Session) HintCardByHouse(houseID string) *HintCard {
	for i := range s.HintCards {
		if s.HintCards[i].HouseID == houseID {
			return &s.HintCards[i]
		}
	}
	return nil
}

// AllSlotsFilled reports whether every final slot holds a card.
func (s *Session) AllSlotsFilled() bool {
	for i := range s.FinalSlots {
		if s.FinalSlots[i].CardID == "" {
			return false
		}
	}
	return len(s.FinalSlots) > 0
}

// HouseDef is a house as configured in the content file (stats only, no
// per-match state).
type HouseDef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BaseCost  int    `json:"base_cost"`
	CardFront string `json:"card_front"`
}

// FragmentVariant is one difficulty line of a final-riddle fragment.
type FragmentVariant struct {
	Text     string `json:"text"`
	Citation string `json:"source"`
}

// FragmentDef is one of the eight final-riddle fragments with both tiers.
type FragmentDef struct {
	Index int             `json:"index"`
	Easy  FragmentVariant `json:"easy"`
	Hard  FragmentVariant `json:"hard"`
}

// FinalChallenge is the end-game puzzle configuration.
type FinalChallenge struct {
	Answer         string `json:"answer"`
	SuccessMessage string `json:"success_message"`
	FailureMessage string `json:"failure_message"`
}
