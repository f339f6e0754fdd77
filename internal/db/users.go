package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"basketlens/internal/models"
)

const userColumns = `id, username, password_hash, oidc_sub, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.OIDCSub,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (d *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(d.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// VerifyCredentials returns the user when username and password match.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (d *DB) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, err := d.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpsertOIDCUser creates or updates a user identified by OIDC subject. The
// username is only set on first sign-in; if it already belongs to another
// user the subject is used instead.
func (d *DB) UpsertOIDCUser(ctx context.Context, sub, username string) (*models.User, error) {
	user, err := d.upsertOIDCUser(ctx, sub, username)
	if isUniqueViolation(err) && username != sub {
		return d.upsertOIDCUser(ctx, sub, sub)
	}
	return user, err
}

func (d *DB) upsertOIDCUser(ctx context.Context, sub, username string) (*models.User, error) {
	query := `
		INSERT INTO users (username, oidc_sub)
		VALUES ($1, $2)
		ON CONFLICT (oidc_sub) DO UPDATE SET updated_at = NOW()
		RETURNING ` + userColumns
	return scanUser(d.Pool.QueryRow(ctx, query, username, sub))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
