package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"vetcare/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var ErrInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a panic into the generic 500 body.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)

				logger.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(stack[:n])).
					Msg("panic recovered")

				c.AbortWithStatusJSON(ErrInternal.HTTPStatus, ErrInternal.ToHTTPError())
			}
		}()
		c.Next()
	}
}
