package mapper

import (
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToShopItems(shops []domain.Shop) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(shops))
	for _, shop := range shops {
		items = append(items, ToShopItem(shop))
	}
	return items
}

func ToShopItem(shop domain.Shop) dto.CatalogItem {
	return toCatalogItem(shop.ID, shop.Name, shop.Description, shop.CreatedAt)
}

func ToChannelItems(channels []domain.Channel) []dto.CatalogItem {
	items := make([]dto.CatalogItem, 0, len(channels))
	for _, channel := range channels {
		items = append(items, ToChannelItem(channel))
	}
	return items
}

func ToChannelItem(channel domain.Channel) dto.CatalogItem {
	return toCatalogItem(channel.ID, channel.Name, channel.Description, channel.CreatedAt)
}

func ToPaginationItem(pagination domain.Pagination) dto.PaginationItem {
	return dto.PaginationItem{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      pagination.Total,
		TotalPages: pagination.TotalPages,
	}
}

func toCatalogItem(id uint64, name string, description *string, createdAt time.Time) dto.CatalogItem {
	item := dto.CatalogItem{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.Format(time.RFC3339),
	}

	if description != nil {
		value := *description
		item.Description = &value
	}

	return item
}
