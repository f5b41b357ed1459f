package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
)

const uniqueViolation = "23505"

// SaveUser inserts a new account. A duplicate username or email maps to a
// 409 so the handler can surface it directly.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
            INSERT INTO users (username, email, password_hash)
            VALUES ($1, $2, $3)
            RETURNING id, created_at
        `, user.Username, user.Email, user.PassHash,
		).Scan(&user.Id, &user.CreatedAt)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, internal_errors.Conflict("Username or email already taken")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.user(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1", username)
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.user(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1", email)
}

func (s *Storage) UserById(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.user(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1", id)
}

func (s *Storage) user(ctx context.Context, query string, arg any) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.Id, &user.Username, &user.Email, &user.PassHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
