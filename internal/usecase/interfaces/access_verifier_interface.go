package interfaces

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the caller identity resolved by an access verifier.
type Principal struct {
	Subject string
	Role    string
}

// IAccessVerifier is the external access-control collaborator. The API
// surfaces only delegate to it; they never decide access themselves.
type IAccessVerifier interface {
	Verify(ctx context.Context, bearerToken string) (Principal, error)
}
