// Package session holds server-side login state. A session is an
// opaque token handed to the client as a cookie, mapped here to the
// identity that logged in. The access gate depends only on the Store
// interface so single-instance deployments can keep sessions in
// process memory while multi-instance ones share a redis backend.
package session

import (
	"context"
	"time"
)

// Session is what a valid token resolves to.
type Session struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type Store interface {
	// Create binds token to s for ttl. An existing binding for the
	// same token is replaced.
	Create(ctx context.Context, token string, s Session, ttl time.Duration) error

	// Get resolves a token. The second return is false when the token
	// is unknown or expired, the error is reserved for backend
	// failures.
	Get(ctx context.Context, token string) (Session, bool, error)

	// Delete destroys a session. Deleting an unknown token is not an
	// error, logout must be idempotent.
	Delete(ctx context.Context, token string) error
}
