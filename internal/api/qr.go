package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/service"
)

const qrSize = 256

// JoinQR renders the session's invite link as a PNG QR code so players
// at the table can join by pointing a phone at the master's screen.
func (h *GameHandler) JoinQR(c *gin.Context) {
	key := c.Param("sessionID")
	if err := service.VerifySession(h.repo, key); err != nil {
		h.fail(c, key, "", err)
		return
	}
	joinURL := fmt.Sprintf("%s/join/%s", strings.TrimRight(h.publicURL, "/"), key)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, qrSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeQR})
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.Data(http.StatusOK, constants.ContentTypePNG, png)
}
