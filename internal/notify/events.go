package notify

// Event names pushed over the session websocket rooms. The payloads are
// broadcast verbatim; the server attaches no transport framing beyond
// {event, data}.
const (
	EventStateUpdated       = "state_updated"
	EventLobbyUpdated       = "lobby_updated"
	EventActiveEvent        = "active_event"
	EventTurnUpdated        = "turn_updated"
	EventRiddleSubmitted    = "riddle_submitted"
	EventRiddleResolved     = "riddle_resolved"
	EventHintCardAdded      = "hint_card_added"
	EventHintCardUpdated    = "hint_card_updated"
	EventSlotUpdated        = "slot_updated"
	EventAbilityUsed        = "ability_used"
	EventWitchOffer         = "witch_offer"
	EventHouseCostsRevealed = "house_costs_revealed"
	EventSubtleHintSignal   = "subtle_hint_signal"
	EventForcedFinal        = "forced_final_challenge"
	EventGameFinished       = "game_finished"
	EventActionRejected     = "action_rejected"
)

// Event is one notification for a session room. An empty PlayerID means
// broadcast; otherwise the event is delivered only to that player's
// connections (private payloads such as the witch's revealed costs).
type Event struct {
	Type      string
	SessionID string
	PlayerID  string
	Payload   interface{}
}

// Broadcast builds a room-wide event.
func Broadcast(sessionID, eventType string, payload interface{}) Event {
	return Event{Type: eventType, SessionID: sessionID, Payload: payload}
}

// To builds a private event for one player.
func To(sessionID, playerID, eventType string, payload interface{}) Event {
	return Event{Type: eventType, SessionID: sessionID, PlayerID: playerID, Payload: payload}
}
