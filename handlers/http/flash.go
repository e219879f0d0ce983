package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// setFlash stores a one-shot notice shown on the next rendered page.
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// popFlash reads and clears the pending notice, if any.
func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
