package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"assettag/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, lastLogin time.Time) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

const userColumns = `id, username, password_hash, name, unit, role, first_login, is_active, last_login, created_at`

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `
		SELECT `+userColumns+` FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to fetch user by username: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := r.DB.GetContext(ctx, &user, `
		SELECT `+userColumns+` FROM users
		WHERE id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to fetch user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `
		INSERT INTO users (username, password_hash, name, unit, role, first_login, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, user.Username, user.PasswordHash, user.Name, user.Unit, user.Role, user.FirstLogin, user.IsActive)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, models.ErrDuplicateUsername
		}
		return uuid.Nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, lastLogin time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET last_login = $1 WHERE id = $2
	`, lastLogin, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// UpdatePassword also clears first_login; a password change is the only
// operation allowed to do that.
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE users SET password_hash = $1, first_login = FALSE WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
