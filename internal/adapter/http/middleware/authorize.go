package middleware

import (
	"errors"
	"net/http"
	"strings"

	"vetcare/internal/usecase/interfaces"
	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

const PrincipalKey = "principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Authorize delegates the access decision to verifier. With the open
// verifier every request passes.
func Authorize(verifier interfaces.IAccessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := verifier.Verify(c.Request.Context(), bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			if errors.Is(err, interfaces.ErrUnauthenticated) {
				_ = c.Error(err)
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(ErrInternal.HTTPStatus, ErrInternal.ToHTTPError())
			return
		}
		c.Set(PrincipalKey, p)
		c.Next()
	}
}

func bearerToken(header string) string {
	h := strings.TrimSpace(header)
	if len(h) >= 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}
