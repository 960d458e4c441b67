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
	listShopsQuery = `SELECT id, name, description, created_at FROM shops ORDER BY id DESC`
	getShopQuery   = `SELECT id, name, description, created_at FROM shops WHERE id = ?`
)

type ShopRepository struct {
	db *sqlx.DB
}

// catalogRow is the row shape shared by shops and channels.
type catalogRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.ShopRepository = (*ShopRepository)(nil)

func NewShopRepository(db *sqlx.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, error) {
	query, args := paginate(listShopsQuery, page)

	var rows []catalogRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}

	shops := make([]domain.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, mapShopRow(row))
	}
	return shops, nil
}

func (r *ShopRepository) CountShops(ctx context.Context) (int, error) {
	return count(ctx, r.db, "shops")
}

func (r *ShopRepository) GetShop(ctx context.Context, id uint64) (domain.Shop, error) {
	var row catalogRow
	if err := r.db.GetContext(ctx, &row, getShopQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Shop{}, domain.ErrShopNotFound
		}
		return domain.Shop{}, fmt.Errorf("get shop %d: %w", id, err)
	}
	return mapShopRow(row), nil
}

func (r *ShopRepository) CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO shops (name, description, created_at) VALUES (?, ?, ?)",
		input.Name, nullString(input.Description), now(),
	)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("create shop: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Shop{}, fmt.Errorf("create shop: %w", err)
	}
	return r.GetShop(ctx, uint64(id))
}

func (r *ShopRepository) UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE shops SET name = ?, description = ? WHERE id = ?",
		input.Name, nullString(input.Description), id,
	); err != nil {
		return domain.Shop{}, fmt.Errorf("update shop %d: %w", id, err)
	}
	return r.GetShop(ctx, id)
}

func (r *ShopRepository) DeleteShop(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "shops", id, domain.ErrShopNotFound)
}

func (r *ShopRepository) ShopNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return exists(ctx, r.db, "shops", "name", name, excludeID)
}

func mapShopRow(row catalogRow) domain.Shop {
	shop := domain.Shop{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		shop.Description = &value
	}

	return shop
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
