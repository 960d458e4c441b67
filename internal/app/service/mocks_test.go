package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"teamboard/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, error) {
	args := m.Called(ctx, page)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *userRepositoryMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) DeleteUser(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *userRepositoryMock) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

type shopRepositoryMock struct {
	mock.Mock
}

func (m *shopRepositoryMock) ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, error) {
	args := m.Called(ctx, page)

	var shops []domain.Shop
	if value := args.Get(0); value != nil {
		shops = value.([]domain.Shop)
	}
	return shops, args.Error(1)
}

func (m *shopRepositoryMock) CountShops(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *shopRepositoryMock) GetShop(ctx context.Context, id uint64) (domain.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopRepositoryMock) CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopRepositoryMock) UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Shop), args.Error(1)
}

func (m *shopRepositoryMock) DeleteShop(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *shopRepositoryMock) ShopNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type channelRepositoryMock struct {
	mock.Mock
}

func (m *channelRepositoryMock) ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, error) {
	args := m.Called(ctx, page)

	var channels []domain.Channel
	if value := args.Get(0); value != nil {
		channels = value.([]domain.Channel)
	}
	return channels, args.Error(1)
}

func (m *channelRepositoryMock) CountChannels(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *channelRepositoryMock) GetChannel(ctx context.Context, id uint64) (domain.Channel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelRepositoryMock) CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelRepositoryMock) UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *channelRepositoryMock) DeleteChannel(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *channelRepositoryMock) ChannelNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}
