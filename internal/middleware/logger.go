package middleware

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const redacted = "REDACTED"

// RequestLogger is gin's request logger with the token query parameter
// masked. A nil out writes to gin.DefaultWriter.
func RequestLogger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: out,
		Formatter: func(param gin.LogFormatterParams) string {
			if param.Latency > time.Minute {
				param.Latency = param.Latency.Truncate(time.Second)
			}
			return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
				param.TimeStamp.Format("2006/01/02 - 15:04:05"),
				param.StatusCode,
				param.Latency,
				param.ClientIP,
				param.Method,
				redactPath(param.Path),
				param.ErrorMessage,
			)
		},
	})
}

// redactPath masks the token query parameter of a logged request path.
func redactPath(path string) string {
	u, err := url.Parse(path)
	if err != nil {
		p, _, _ := strings.Cut(path, "?")
		return p
	}
	if u.RawQuery == "" {
		return path
	}
	q := u.Query()
	if !q.Has(TokenQueryParam) {
		return path
	}
	q.Set(TokenQueryParam, redacted)
	u.RawQuery = q.Encode()
	return u.String()
}
