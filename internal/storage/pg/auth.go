package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	err := s.db.QueryRow(`
        INSERT INTO users (name, email, pass_hash)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `, user.Name, user.Email, user.PassHash).Scan(&user.Id, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, internal_errors.New(internal_errors.Validation, "Email already registered")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) UserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, name, email, pass_hash, created_at
        FROM users
        WHERE email = $1
    `, email).Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.New(internal_errors.NotFound, "User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
