package service

import (
	"context"
	"fmt"
	"time"

	"teamboard/internal/app/stats"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

type DashboardService struct {
	store    ports.TaskStore
	users    ports.UserRepository
	shops    ports.ShopRepository
	channels ports.ChannelRepository
	scorer   stats.QualityScorer
	now      func() time.Time
}

func NewDashboardService(
	store ports.TaskStore,
	users ports.UserRepository,
	shops ports.ShopRepository,
	channels ports.ChannelRepository,
	scorer stats.QualityScorer,
) *DashboardService {
	return &DashboardService{
		store:    store,
		users:    users,
		shops:    shops,
		channels: channels,
		scorer:   scorer,
		now:      time.Now,
	}
}

// Performance aggregates the current snapshot per user. Users come back in
// repository order (newest first).
func (s *DashboardService) Performance(ctx context.Context) ([]domain.UserPerformance, error) {
	users, err := s.users.ListUsers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return stats.Performance(s.store.Current(), users, s.scorer), nil
}

func (s *DashboardService) Workload(_ context.Context, userID uint64, taskType domain.TaskType) (domain.WorkloadSummary, error) {
	if taskType != "" && !taskType.IsValid() {
		return domain.WorkloadSummary{}, domain.NewValidationError("type", "must be support or media")
	}

	tasks := s.store.Current()
	if userID != 0 {
		tasks = stats.ByUser(tasks, userID)
	}
	if taskType != "" {
		tasks = stats.ByType(tasks, taskType)
	}
	return stats.Workload(tasks, s.now()), nil
}

func (s *DashboardService) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("count users: %w", err)
	}
	shops, err := s.shops.CountShops(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("count shops: %w", err)
	}
	channels, err := s.channels.CountChannels(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("count channels: %w", err)
	}

	return domain.DashboardSummary{
		Users:    users,
		Shops:    shops,
		Channels: channels,
		Tasks:    stats.Workload(s.store.Current(), s.now()),
	}, nil
}

var _ ports.DashboardService = (*DashboardService)(nil)
