package ports

import (
	"context"

	"teamboard/internal/core/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, error)
	CountUsers(ctx context.Context) (int, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
	EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error)
}

type ShopRepository interface {
	ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, error)
	CountShops(ctx context.Context) (int, error)
	GetShop(ctx context.Context, id uint64) (domain.Shop, error)
	CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error)
	UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error)
	DeleteShop(ctx context.Context, id uint64) error
	ShopNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}

type ChannelRepository interface {
	ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, error)
	CountChannels(ctx context.Context) (int, error)
	GetChannel(ctx context.Context, id uint64) (domain.Channel, error)
	CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error)
	UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error)
	DeleteChannel(ctx context.Context, id uint64) error
	ChannelNameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}

type UserService interface {
	ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, *domain.Pagination, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type ShopService interface {
	ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, *domain.Pagination, error)
	GetShop(ctx context.Context, id uint64) (domain.Shop, error)
	CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error)
	UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error)
	DeleteShop(ctx context.Context, id uint64) error
}

type ChannelService interface {
	ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, *domain.Pagination, error)
	GetChannel(ctx context.Context, id uint64) (domain.Channel, error)
	CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error)
	UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error)
	DeleteChannel(ctx context.Context, id uint64) error
}
