package constants

// Centralized constants for routes, headers and API responses.
const (
	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypePNG = "image/png"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix        = "/api"
	RouteVersion          = "/version"
	RouteSessions         = "/sessions"
	RouteSessionByID      = "/sessions/:sessionID"
	RouteSessionVerify    = "/sessions/:sessionID/verify"
	RouteSessionQR        = "/sessions/:sessionID/qr"
	RouteSessionJoin      = "/sessions/:sessionID/join"
	RouteSessionLeave     = "/sessions/:sessionID/leave"
	RouteSessionHero      = "/sessions/:sessionID/hero"
	RouteSessionStart     = "/sessions/:sessionID/start"
	RouteSessionReveal    = "/sessions/:sessionID/reveal"
	RouteActionMove       = "/sessions/:sessionID/actions/move"
	RouteActionJump       = "/sessions/:sessionID/actions/jump"
	RouteActionExplore    = "/sessions/:sessionID/actions/explore"
	RouteActionPass       = "/sessions/:sessionID/actions/pass"
	RouteRiddleSubmit     = "/sessions/:sessionID/riddles"
	RouteRiddleRetry      = "/sessions/:sessionID/riddles/retry"
	RouteRiddleConfirm    = "/sessions/:sessionID/riddles/confirm"
	RouteAbility          = "/sessions/:sessionID/ability"
	RouteAbilityWitchPick = "/sessions/:sessionID/ability/witch-reveal"
	RouteFinalSlotPlace   = "/sessions/:sessionID/final/slots"
	RouteFinalSlotRemove  = "/sessions/:sessionID/final/slots/remove"
	RouteFinalAnswer      = "/sessions/:sessionID/answer"
	RouteWS               = "/ws"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidSessionID    = "Invalid session ID"
	ErrFailedUpdateSession = "Failed to update session"
	ErrFailedEncodeQR      = "Failed to encode join QR code"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldPlayerID  = "player_id"
	LogFieldEvent     = "event"
	LogFieldAddr      = "addr"
)
