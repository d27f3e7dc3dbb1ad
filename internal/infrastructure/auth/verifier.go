package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetcare/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

// OpenAccess admits every caller. It is the default: the API surfaces do
// not authenticate on their own.
type OpenAccess struct{}

var _ interfaces.IAccessVerifier = OpenAccess{}

func (OpenAccess) Verify(_ context.Context, bearerToken string) (interfaces.Principal, error) {
	return interfaces.Principal{Subject: "anonymous", Role: "open"}, nil
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier accepts HS256 bearer tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.IAccessVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), now: time.Now}
}

func (v *JWTVerifier) Verify(_ context.Context, bearerToken string) (interfaces.Principal, error) {
	tokenStr := strings.TrimSpace(bearerToken)
	if tokenStr == "" {
		return interfaces.Principal{}, fmt.Errorf("%w: missing token", interfaces.ErrUnauthenticated)
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(v.now))
	if err != nil {
		return interfaces.Principal{}, fmt.Errorf("%w: %w", interfaces.ErrUnauthenticated, err)
	}
	if !tok.Valid {
		return interfaces.Principal{}, fmt.Errorf("%w: invalid token", interfaces.ErrUnauthenticated)
	}
	if claims.Subject == "" {
		return interfaces.Principal{}, fmt.Errorf("%w: token has no subject", interfaces.ErrUnauthenticated)
	}
	return interfaces.Principal{Subject: claims.Subject, Role: claims.Role}, nil
}

// Issue signs a token for subject. Used by the client command and tests.
func Issue(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
