package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maramilod/alx-backend/internal/auth"
	"github.com/maramilod/alx-backend/internal/database"
	"github.com/maramilod/alx-backend/internal/i18n"
	"github.com/maramilod/alx-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newLocaleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	n, err := i18n.NewNegotiator(i18n.DefaultConfig())
	require.NoError(t, err)

	r := gin.New()
	r.Use(UserMiddleware(), LocaleMiddleware(n))
	r.GET("/", func(c *gin.Context) {
		name := ""
		if u := CurrentUser(c); u != nil {
			name = u.Name
		}
		c.JSON(http.StatusOK, gin.H{
			"user":     name,
			"locale":   c.GetString(ContextLocale),
			"timezone": c.GetString(ContextTimezone),
			"location": Location(c).String(),
		})
	})
	return r
}

func get(t *testing.T, r *gin.Engine, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w
}

func TestLocaleMiddleware_UserPreferences(t *testing.T) {
	r := newLocaleRouter(t)

	w := get(t, r, "/?login_as=1", nil)
	require.JSONEq(t, `{"user":"Balou","locale":"fr","timezone":"Europe/Paris","location":"Europe/Paris"}`, w.Body.String())
	require.Equal(t, "fr", w.Header().Get("Content-Language"))

	// Spock's locale and timezone are both unsupported.
	w = get(t, r, "/?login_as=3", map[string]string{"Accept-Language": "fr"})
	require.JSONEq(t, `{"user":"Spock","locale":"fr","timezone":"UTC","location":"UTC"}`, w.Body.String())

	w = get(t, r, "/?login_as=2&locale=fr&timezone=Vulcan", nil)
	require.JSONEq(t, `{"user":"Beyonce","locale":"fr","timezone":"US/Central","location":"US/Central"}`, w.Body.String())
}

func TestLocaleMiddleware_Anonymous(t *testing.T) {
	r := newLocaleRouter(t)

	w := get(t, r, "/?login_as=abc", map[string]string{"locale": "fr"})
	require.JSONEq(t, `{"user":"","locale":"fr","timezone":"UTC","location":"UTC"}`, w.Body.String())

	w = get(t, r, "/?login_as=42", nil)
	require.JSONEq(t, `{"user":"","locale":"en","timezone":"UTC","location":"UTC"}`, w.Body.String())
}

func TestUserMiddleware_BearerToken(t *testing.T) {
	r := newLocaleRouter(t)
	token, err := auth.GenerateToken(4, "Teletubby")
	require.NoError(t, err)

	w := get(t, r, "/", map[string]string{"Authorization": "Bearer " + token})
	require.JSONEq(t, `{"user":"Teletubby","locale":"en","timezone":"Europe/London","location":"Europe/London"}`, w.Body.String())
}
