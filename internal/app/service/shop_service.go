package service

import (
	"context"
	"fmt"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

type ShopService struct {
	shopRepository ports.ShopRepository
}

func NewShopService(shopRepository ports.ShopRepository) *ShopService {
	return &ShopService{shopRepository: shopRepository}
}

func (s *ShopService) ListShops(ctx context.Context, page *domain.Page) ([]domain.Shop, *domain.Pagination, error) {
	page = normalizePage(page)
	shops, err := s.shopRepository.ListShops(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	if page == nil {
		return shops, nil, nil
	}

	total, err := s.shopRepository.CountShops(ctx)
	if err != nil {
		return nil, nil, err
	}
	pagination := domain.NewPagination(*page, total)
	return shops, &pagination, nil
}

func (s *ShopService) GetShop(ctx context.Context, id uint64) (domain.Shop, error) {
	return s.shopRepository.GetShop(ctx, id)
}

func (s *ShopService) CreateShop(ctx context.Context, input domain.CatalogInput) (domain.Shop, error) {
	input, err := s.normalize(ctx, input, 0)
	if err != nil {
		return domain.Shop{}, err
	}
	return s.shopRepository.CreateShop(ctx, input)
}

func (s *ShopService) UpdateShop(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Shop, error) {
	if _, err := s.shopRepository.GetShop(ctx, id); err != nil {
		return domain.Shop{}, err
	}
	input, err := s.normalize(ctx, input, id)
	if err != nil {
		return domain.Shop{}, err
	}
	return s.shopRepository.UpdateShop(ctx, id, input)
}

func (s *ShopService) DeleteShop(ctx context.Context, id uint64) error {
	return s.shopRepository.DeleteShop(ctx, id)
}

func (s *ShopService) normalize(ctx context.Context, input domain.CatalogInput, excludeID uint64) (domain.CatalogInput, error) {
	input, err := normalizeCatalogInput(input)
	if err != nil {
		return domain.CatalogInput{}, err
	}
	taken, err := s.shopRepository.ShopNameTaken(ctx, input.Name, excludeID)
	if err != nil {
		return domain.CatalogInput{}, err
	}
	if taken {
		return domain.CatalogInput{}, fmt.Errorf("shop %q: %w", input.Name, domain.ErrDuplicate)
	}
	return input, nil
}

var _ ports.ShopService = (*ShopService)(nil)
