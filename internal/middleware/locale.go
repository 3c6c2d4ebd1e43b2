package middleware

import (
	"time"

	"github.com/maramilod/alx-backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware stores the negotiated locale and timezone in the context.
// It must run after UserMiddleware so stored preferences are honoured.
func LocaleMiddleware(n *i18n.Negotiator) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := i18n.Request{
			QueryLocale:    c.Query("locale"),
			HeaderLocale:   c.GetHeader("locale"),
			AcceptLanguage: c.GetHeader("Accept-Language"),
			QueryTimezone:  c.Query("timezone"),
		}
		if user := CurrentUser(c); user != nil {
			req.User = &i18n.Profile{Locale: user.Locale, Timezone: user.Timezone}
		}

		locale := n.SelectLocale(req)
		tzName, loc := n.SelectTimezone(req)
		c.Set(ContextLocale, locale)
		c.Set(ContextTimezone, tzName)
		c.Set(ContextLocation, loc)
		c.Header("Content-Language", locale)
		c.Next()
	}
}

// Location returns the timezone chosen by LocaleMiddleware, or UTC.
func Location(c *gin.Context) *time.Location {
	if v, ok := c.Get(ContextLocation); ok {
		if loc, ok := v.(*time.Location); ok {
			return loc
		}
	}
	return time.UTC
}
