package engine

import (
	"errors"
	"strings"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/game"
)

var (
	ErrInvalidSlot       = errors.New("invalid slot index")
	ErrCardNotFound      = errors.New("hint card not found")
	ErrFinalNotAvailable = errors.New("final challenge is not available yet")
)

// PlaceHint puts a collected hint card into a final slot. A card occupies
// at most one slot: it is pulled out of any slot currently holding it
// before placement, so duplicates are impossible by construction.
func PlaceHint(s *game.Session, cardID string, slotIndex int) error {
	if s.HintCardByID(cardID) == nil {
		return ErrCardNotFound
	}
	if slotIndex < 0 || slotIndex >= len(s.FinalSlots) {
		return ErrInvalidSlot
	}
	for i := range s.FinalSlots {
		if s.FinalSlots[i].CardID == cardID {
			s.FinalSlots[i].CardID = ""
		}
	}
	s.FinalSlots[slotIndex].CardID = cardID
	recomputeAssembled(s)
	return nil
}

// RemoveHint clears a final slot.
func RemoveHint(s *game.Session, slotIndex int) error {
	if slotIndex < 0 || slotIndex >= len(s.FinalSlots) {
		return ErrInvalidSlot
	}
	s.FinalSlots[slotIndex].CardID = ""
	recomputeAssembled(s)
	return nil
}

// recomputeAssembled rebuilds the derived final text: the space-joined
// texts of occupied slots in slot order, skipping empty slots.
func recomputeAssembled(s *game.Session) {
	parts := make([]string, 0, len(s.FinalSlots))
	for i := range s.FinalSlots {
		if s.FinalSlots[i].CardID == "" {
			continue
		}
		if card := s.HintCardByID(s.FinalSlots[i].CardID); card != nil {
			parts = append(parts, card.Text)
		}
	}
	s.AssembledText = strings.Join(parts, " ")
}

// FinalChallengeAvailable reports whether the group may attempt the final
// challenge: either every slot is filled, or the point pool hit zero and
// the attempt is forced.
func FinalChallengeAvailable(s *game.Session) bool {
	return s.AllSlotsFilled() || s.PointPool == 0
}

// ResolveFinal checks the submitted answer against the expected phrase
// and terminates the session. The comparison ignores case and leading,
// trailing and repeated whitespace. Either way the game is over; the
// outcome is monotone and no state-changing action is accepted after it.
func ResolveFinal(s *game.Session, answer, expected string) (game.Outcome, error) {
	if s.GameOver {
		return s.Outcome, nil
	}
	if !FinalChallengeAvailable(s) {
		return game.OutcomeUndetermined, ErrFinalNotAvailable
	}
	s.GameOver = true
	if normalizeAnswer(answer) == normalizeAnswer(expected) {
		s.Outcome = game.OutcomeWin
	} else {
		s.Outcome = game.OutcomeLoss
	}
	return s.Outcome, nil
}

func normalizeAnswer(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
