package tests

import (
	"context"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	args := m.Called(ctx, query)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateSupportTask(ctx context.Context, input domain.SupportTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateMediaTask(ctx context.Context, input domain.MediaTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskServiceMock) StartTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetProgress(ctx context.Context, id uint64, progress int) (domain.Task, error) {
	args := m.Called(ctx, id, progress)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Subscribe(fn func(snapshot []domain.Task)) ports.Subscription {
	return m.Called(fn).Get(0).(ports.Subscription)
}

type dashboardServiceMock struct {
	mock.Mock
}

var _ ports.DashboardService = (*dashboardServiceMock)(nil)

func (m *dashboardServiceMock) Performance(ctx context.Context) ([]domain.UserPerformance, error) {
	args := m.Called(ctx)

	var records []domain.UserPerformance
	if value := args.Get(0); value != nil {
		records = value.([]domain.UserPerformance)
	}
	return records, args.Error(1)
}

func (m *dashboardServiceMock) Workload(ctx context.Context, userID uint64, taskType domain.TaskType) (domain.WorkloadSummary, error) {
	args := m.Called(ctx, userID, taskType)
	return args.Get(0).(domain.WorkloadSummary), args.Error(1)
}

func (m *dashboardServiceMock) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardSummary), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

var _ ports.UserService = (*userServiceMock)(nil)

func (m *userServiceMock) ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, *domain.Pagination, error) {
	args := m.Called(ctx, page)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	var pagination *domain.Pagination
	if value := args.Get(1); value != nil {
		pagination = value.(*domain.Pagination)
	}
	return users, pagination, args.Error(2)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type shopServiceMock struct {
	mock.Mock
}

var _ ports.ShopService = (*shopServiceMock)(nil)

func (m *shopServiceMock) ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, *domain.Pagination, error) {
	args := m.Called(ctx, page)

	var shops []domain.Shop
	if value := args.Get(0); value != nil {
		shops = value.([]domain.Shop)
	}
	var pagination *domain.Pagination
	if value := args.Get(1); value != nil {
		pagination = value.(*domain.Pagination)
	}
	return shops, pagination, args.Error(2)
}

func (m *shopServiceMock) GetShop(ctx context.Context, id uint64) (domain.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopServiceMock) CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopServiceMock) UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopServiceMock) DeleteShop(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type channelServiceMock struct {
	mock.Mock
}

var _ ports.ChannelService = (*channelServiceMock)(nil)

func (m *channelServiceMock) ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, *domain.Pagination, error) {
	args := m.Called(ctx, page)

	var channels []domain.Channel
	if value := args.Get(0); value != nil {
		channels = value.([]domain.Channel)
	}
	var pagination *domain.Pagination
	if value := args.Get(1); value != nil {
		pagination = value.(*domain.Pagination)
	}
	return channels, pagination, args.Error(2)
}

func (m *channelServiceMock) GetChannel(ctx context.Context, id uint64) (domain.Channel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelServiceMock) CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelServiceMock) UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelServiceMock) DeleteChannel(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type subscriptionMock struct {
	mock.Mock
}

func (m *subscriptionMock) Unsubscribe() {
	m.Called()
}
