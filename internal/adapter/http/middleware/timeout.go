package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

var ErrTimeout = pkg.NewDomainErrorSimple("TIMEOUT", "Request processing exceeded the allowed time limit", http.StatusGatewayTimeout)

// RequestTimeout puts a deadline on the request context. Store calls made
// with that context abort once it passes. Handlers run on the request
// goroutine; if one returns without writing after the deadline, a 504 is
// written here.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !c.Writer.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.AbortWithStatusJSON(ErrTimeout.HTTPStatus, ErrTimeout.ToHTTPError())
		}
	}
}
