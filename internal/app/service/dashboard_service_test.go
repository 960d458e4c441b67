package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"teamboard/internal/app/taskstore"
	"teamboard/internal/core/domain"
)

type constantScorer struct{}

func (constantScorer) Score(domain.User, []domain.Task) float64 { return 4.5 }
func (constantScorer) Simulated() bool                         { return true }

func newDashboardFixture(t *testing.T) (*DashboardService, *userRepositoryMock, *shopRepositoryMock, *channelRepositoryMock) {
	t.Helper()

	store := taskstore.New(taskstore.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, store.ReplaceAll([]domain.Task{
		{ID: 1, Type: domain.TaskTypeSupport, Status: domain.TaskStatusCompleted, Progress: 100, AssignedTo: domain.EntityRef{ID: 1}, CreatedAt: fixedNow},
		{ID: 2, Type: domain.TaskTypeSupport, Status: domain.TaskStatusCompleted, Progress: 100, AssignedTo: domain.EntityRef{ID: 1}, CreatedAt: fixedNow},
		{ID: 3, Type: domain.TaskTypeMedia, Status: domain.TaskStatusInProgress, Progress: 40, AssignedTo: domain.EntityRef{ID: 1}, CreatedAt: fixedNow},
		{ID: 4, Type: domain.TaskTypeMedia, Status: domain.TaskStatusPending, AssignedTo: domain.EntityRef{ID: 1}, CreatedAt: fixedNow.AddDate(0, 0, -2)},
	}))

	users := new(userRepositoryMock)
	shops := new(shopRepositoryMock)
	channels := new(channelRepositoryMock)
	service := NewDashboardService(store, users, shops, channels, constantScorer{})
	service.now = func() time.Time { return fixedNow }
	return service, users, shops, channels
}

func TestDashboardService_Performance(t *testing.T) {
	service, users, _, _ := newDashboardFixture(t)
	users.On("ListUsers", mock.Anything, (*domain.Page)(nil)).Return([]domain.User{
		{ID: 2, Name: "Jane Smith"},
		{ID: 1, Name: "John Doe"},
	}, nil).Once()

	got, err := service.Performance(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].UserID)
	assert.Equal(t, 0, got[0].TotalTasks)
	assert.Equal(t, 0, got[0].CompletionRate)

	assert.Equal(t, "John Doe", got[1].UserName)
	assert.Equal(t, 2, got[1].TasksCompleted)
	assert.Equal(t, 1, got[1].TasksInProgress)
	assert.Equal(t, 1, got[1].TasksPending)
	assert.Equal(t, 4, got[1].TotalTasks)
	assert.Equal(t, 50, got[1].CompletionRate)
	assert.Equal(t, 4.5, got[1].QualityScore)
	assert.True(t, got[1].QualitySimulated)
	users.AssertExpectations(t)
}

func TestDashboardService_Performance_RepositoryError(t *testing.T) {
	service, users, _, _ := newDashboardFixture(t)
	users.On("ListUsers", mock.Anything, (*domain.Page)(nil)).Return(nil, errors.New("db is down")).Once()

	_, err := service.Performance(context.Background())

	require.EqualError(t, err, "list users: db is down")
}

func TestDashboardService_Workload(t *testing.T) {
	service, _, _, _ := newDashboardFixture(t)

	media, err := service.Workload(context.Background(), 1, domain.TaskTypeMedia)
	require.NoError(t, err)
	assert.Equal(t, 2, media.Total)
	assert.Equal(t, 1, media.InProgress)
	assert.Equal(t, 1, media.Pending)
	assert.Equal(t, 20, media.OverallProgress)
	assert.Equal(t, 5, media.EstimatedHoursRemaining)

	all, err := service.Workload(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.Equal(t, 2, all.TodayCompleted)

	_, err = service.Workload(context.Background(), 0, "video")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestDashboardService_Summary(t *testing.T) {
	service, users, shops, channels := newDashboardFixture(t)
	users.On("CountUsers", mock.Anything).Return(5, nil).Once()
	shops.On("CountShops", mock.Anything).Return(4, nil).Once()
	channels.On("CountChannels", mock.Anything).Return(3, nil).Once()

	got, err := service.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, got.Users)
	assert.Equal(t, 4, got.Shops)
	assert.Equal(t, 3, got.Channels)
	assert.Equal(t, 4, got.Tasks.Total)
	assert.Equal(t, 50, got.Tasks.CompletionRate)
}

func TestDashboardService_Summary_CountError(t *testing.T) {
	service, users, shops, _ := newDashboardFixture(t)
	users.On("CountUsers", mock.Anything).Return(5, nil).Once()
	shops.On("CountShops", mock.Anything).Return(0, errors.New("timeout")).Once()

	_, err := service.Summary(context.Background())

	require.EqualError(t, err, "count shops: timeout")
}
