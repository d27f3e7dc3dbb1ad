package auth

import (
	"context"
	"testing"
	"time"

	"vetcare/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestOpenAccess_AdmitsAnyone(t *testing.T) {
	p, err := OpenAccess{}.Verify(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "anonymous", p.Subject)
}

func TestJWTVerifier(t *testing.T) {
	ctx := context.Background()
	v := NewJWTVerifier("s3cret")

	t.Run("valid token", func(t *testing.T) {
		tok, err := Issue("s3cret", "user-1", "staff", time.Hour)
		require.NoError(t, err)

		p, err := v.Verify(ctx, tok)
		require.NoError(t, err)
		require.Equal(t, interfaces.Principal{Subject: "user-1", Role: "staff"}, p)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := v.Verify(ctx, "  ")
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := Issue("other", "user-1", "staff", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, tok)
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := Issue("s3cret", "user-1", "staff", time.Hour)
		require.NoError(t, err)

		late := NewJWTVerifier("s3cret")
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = late.Verify(ctx, tok)
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other signing method", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "user-1"}).SignedString([]byte("s3cret"))
		require.NoError(t, err)

		_, err = v.Verify(ctx, tok)
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("no subject", func(t *testing.T) {
		tok, err := Issue("s3cret", "", "staff", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(ctx, tok)
		require.ErrorIs(t, err, interfaces.ErrUnauthenticated)
	})

	t.Run("issue needs a secret", func(t *testing.T) {
		_, err := Issue("", "user-1", "staff", time.Hour)
		require.Error(t, err)
	})
}
