package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT u.id, u.full_name, u.email, u.password_hash, r.name, u.created_at
        FROM users u
        JOIN roles r ON r.id = u.role_id
        WHERE u.email = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT u.id, u.full_name, u.email, u.password_hash, r.name, u.created_at
        FROM users u
        JOIN roles r ON r.id = u.role_id
        WHERE u.id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (full_name, email, password_hash, role_id)
        VALUES ($1, $2, $3, (SELECT id FROM roles WHERE name = $4))
        RETURNING id, created_at
    `
	err := repo.db.QueryRow(ctx, query, user.FullName, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
