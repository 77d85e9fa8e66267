package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
)

// NewRouter wires all routes onto a gin engine. corsOrigin is the value
// sent back in Access-Control-Allow-Origin; the clients are plain
// browser pages served from elsewhere.
func NewRouter(h *GameHandler, corsOrigin string) *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware(corsOrigin))

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.POST(constants.RouteSessions, h.CreateSession)
		apiRoutes.GET(constants.RouteSessionByID, h.GetSession)
		apiRoutes.DELETE(constants.RouteSessionByID, h.DeleteSession)
		apiRoutes.GET(constants.RouteSessionVerify, h.VerifySession)
		apiRoutes.GET(constants.RouteSessionQR, h.JoinQR)

		apiRoutes.POST(constants.RouteSessionJoin, h.JoinSession)
		apiRoutes.POST(constants.RouteSessionLeave, h.LeaveSession)
		apiRoutes.POST(constants.RouteSessionHero, h.ChooseHero)
		apiRoutes.POST(constants.RouteSessionStart, h.StartGame)
		apiRoutes.POST(constants.RouteSessionReveal, h.RevealHouse)

		apiRoutes.POST(constants.RouteActionMove, h.Move)
		apiRoutes.POST(constants.RouteActionJump, h.LongJump)
		apiRoutes.POST(constants.RouteActionExplore, h.Explore)
		apiRoutes.POST(constants.RouteActionPass, h.Pass)

		apiRoutes.POST(constants.RouteRiddleSubmit, h.SubmitRiddle)
		apiRoutes.POST(constants.RouteRiddleRetry, h.RetryRiddle)
		apiRoutes.POST(constants.RouteRiddleConfirm, h.ConfirmRiddle)

		apiRoutes.POST(constants.RouteAbility, h.UseAbility)
		apiRoutes.POST(constants.RouteAbilityWitchPick, h.WitchReveal)

		apiRoutes.POST(constants.RouteFinalSlotPlace, h.PlaceHint)
		apiRoutes.POST(constants.RouteFinalSlotRemove, h.RemoveHint)
		apiRoutes.POST(constants.RouteFinalAnswer, h.SubmitFinalAnswer)

		apiRoutes.GET(constants.RouteWS, h.Subscribe)
	}

	return router
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", constants.HeaderContentType)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
