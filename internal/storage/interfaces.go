// Package storage provides the SQLite-backed account store.
// The chat resolver never reads it; it exists for the page layer and
// readiness reporting.
package storage

import "context"

// UserRepository defines the interface for account operations.
type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	CountUsers(ctx context.Context) (int, error)
}

var _ UserRepository = (*DB)(nil)
