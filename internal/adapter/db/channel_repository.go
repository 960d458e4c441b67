package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

const (
	listChannelsQuery = `SELECT id, name, description, created_at FROM channels ORDER BY id DESC`
	getChannelQuery   = `SELECT id, name, description, created_at FROM channels WHERE id = ?`
)

type ChannelRepository struct {
	db *sqlx.DB
}

var _ ports.ChannelRepository = (*ChannelRepository)(nil)

func NewChannelRepository(db *sqlx.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, error) {
	query, args := paginate(listChannelsQuery, page)

	var rows []catalogRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	channels := make([]domain.Channel, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, mapChannelRow(row))
	}
	return channels, nil
}

func (r *ChannelRepository) CountChannels(ctx context.Context) (int, error) {
	return count(ctx, r.db, "channels")
}

func (r *ChannelRepository) GetChannel(ctx context.Context, id uint64) (domain.Channel, error) {
	var row catalogRow
	if err := r.db.GetContext(ctx, &row, getChannelQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Channel{}, domain.ErrChannelNotFound
		}
		return domain.Channel{}, fmt.Errorf("get channel %d: %w", id, err)
	}
	return mapChannelRow(row), nil
}

func (r *ChannelRepository) CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO channels (name, description, created_at) VALUES (?, ?, ?)",
		input.Name, nullString(input.Description), now(),
	)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Channel{}, fmt.Errorf("create channel: %w", err)
	}
	return r.GetChannel(ctx, uint64(id))
}

func (r *ChannelRepository) UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE channels SET name = ?, description = ? WHERE id = ?",
		input.Name, nullString(input.Description), id,
	); err != nil {
		return domain.Channel{}, fmt.Errorf("update channel %d: %w", id, err)
	}
	return r.GetChannel(ctx, id)
}

func (r *ChannelRepository) DeleteChannel(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "channels", id, domain.ErrChannelNotFound)
}

func (r *ChannelRepository) ChannelNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return exists(ctx, r.db, "channels", "name", name, excludeID)
}

func mapChannelRow(row catalogRow) domain.Channel {
	channel := domain.Channel{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		channel.Description = &value
	}

	return channel
}
