package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

const (
	listUsersQuery = `SELECT id, name, email, created_at FROM users ORDER BY id DESC`
	getUserQuery   = `SELECT id, name, email, created_at FROM users WHERE id = ?`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, error) {
	query, args := paginate(listUsersQuery, page)

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	return count(ctx, r.db, "users")
}

func (r *UserRepository) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)",
		input.Name, input.Email, now(),
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return r.GetUser(ctx, uint64(id))
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ? WHERE id = ?",
		input.Name, input.Email, id,
	); err != nil {
		return domain.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	return r.GetUser(ctx, id)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "users", id, domain.ErrUserNotFound)
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return exists(ctx, r.db, "users", "email", email, excludeID)
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
