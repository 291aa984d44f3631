package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	domerrors "github.com/srmist/campus-chat-go/internal/errors"
)

const (
	maxUsernameLength = 64
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
)

// CreateUser hashes password and inserts a new account.
// Returns domerrors.ErrUserExists when the username is taken.
//
// Accounts are provisioned for a later login page. No route creates them
// yet; the readiness check only counts them.
func (db *DB) CreateUser(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), db.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdAt := db.now().Unix()
	query := `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query, username, string(hash), createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create user %q: %w", username, domerrors.ErrUserExists)
		}
		slog.ErrorContext(ctx, "failed to create user",
			"username", username,
			"error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "CreateUser",
			"duration_ms", duration.Milliseconds())
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read user id: %w", err)
	}

	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    createdAt,
	}, nil
}

// GetUserByUsername retrieves an account. Returns domerrors.ErrNotFound when
// no row matches.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`

	var user User
	err := db.conn.QueryRowContext(ctx, query, strings.TrimSpace(username)).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to query user",
			"username", username,
			"error", err)
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// Authenticate checks password against the stored hash.
// Unknown users and wrong passwords both yield domerrors.ErrInvalidCredentials.
// Like CreateUser it is provisioned for the later login page and the chat
// path never calls it.
func (db *DB) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := db.GetUserByUsername(ctx, username)
	if errors.Is(err, domerrors.ErrNotFound) {
		return nil, domerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}

// CountUsers returns the number of accounts.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func validateCredentials(username, password string) error {
	switch {
	case username == "":
		return domerrors.NewValidationError("username", "must not be blank")
	case len([]rune(username)) > maxUsernameLength:
		return domerrors.NewValidationError("username", fmt.Sprintf("must be at most %d characters", maxUsernameLength))
	case strings.TrimSpace(password) == "":
		return domerrors.NewValidationError("password", "must not be blank")
	case len(password) > maxPasswordBytes:
		return domerrors.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
