package handlers

import (
	"net/http"
	"time"

	"github.com/maramilod/alx-backend/internal/i18n"
	"github.com/maramilod/alx-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// HomeResponse is the localized landing payload.
type HomeResponse struct {
	Title       string `json:"title"`
	Header      string `json:"header"`
	Greeting    string `json:"greeting"`
	CurrentTime string `json:"current_time"`
	Locale      string `json:"locale"`
	Timezone    string `json:"timezone"`
}

// HomeHandler handles GET / using the locale and timezone negotiated by
// middleware.LocaleMiddleware.
func HomeHandler(n *i18n.Negotiator, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		locale := c.GetString(middleware.ContextLocale)
		p := n.Printer(locale)

		greeting := p.Sprintf(i18n.NotLoggedIn)
		if user := middleware.CurrentUser(c); user != nil {
			greeting = p.Sprintf(i18n.LoggedInAs, user.Name)
		}
		current := i18n.FormatTime(now().In(middleware.Location(c)), locale)

		c.JSON(http.StatusOK, HomeResponse{
			Title:       p.Sprintf(i18n.HomeTitle),
			Header:      p.Sprintf(i18n.HomeHeader),
			Greeting:    greeting,
			CurrentTime: p.Sprintf(i18n.CurrentTimeIs, current),
			Locale:      locale,
			Timezone:    c.GetString(middleware.ContextTimezone),
		})
	}
}
