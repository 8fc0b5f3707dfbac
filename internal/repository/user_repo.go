package repository

import (
	"context"
	"time"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user and returns the created id. A unique-key race on
// email comes back as a conflict, same as the pre-check in the service.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (int64, error) {
	var id int64
	query := `INSERT INTO users (first_name, last_name, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.DB.QueryRow(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, time.Now()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Conflict("Email already registered")
		}
		return 0, apperr.Storage(err)
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, first_name, last_name, email, password_hash, is_admin, created_at
		FROM users WHERE email=$1`
	err := r.DB.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}
