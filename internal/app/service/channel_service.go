package service

import (
	"context"
	"fmt"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

type ChannelService struct {
	channelRepository ports.ChannelRepository
}

func NewChannelService(channelRepository ports.ChannelRepository) *ChannelService {
	return &ChannelService{channelRepository: channelRepository}
}

func (s *ChannelService) ListChannels(ctx context.Context, page *domain.Page) ([]domain.Channel, *domain.Pagination, error) {
	page = normalizePage(page)
	channels, err := s.channelRepository.ListChannels(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	if page == nil {
		return channels, nil, nil
	}

	total, err := s.channelRepository.CountChannels(ctx)
	if err != nil {
		return nil, nil, err
	}
	pagination := domain.NewPagination(*page, total)
	return channels, &pagination, nil
}

func (s *ChannelService) GetChannel(ctx context.Context, id uint64) (domain.Channel, error) {
	return s.channelRepository.GetChannel(ctx, id)
}

func (s *ChannelService) CreateChannel(ctx context.Context, input domain.CatalogInput) (domain.Channel, error) {
	input, err := s.normalize(ctx, input, 0)
	if err != nil {
		return domain.Channel{}, err
	}
	return s.channelRepository.CreateChannel(ctx, input)
}

func (s *ChannelService) UpdateChannel(ctx context.Context, id uint64, input domain.CatalogInput) (domain.Channel, error) {
	if _, err := s.channelRepository.GetChannel(ctx, id); err != nil {
		return domain.Channel{}, err
	}
	input, err := s.normalize(ctx, input, id)
	if err != nil {
		return domain.Channel{}, err
	}
	return s.channelRepository.UpdateChannel(ctx, id, input)
}

func (s *ChannelService) DeleteChannel(ctx context.Context, id uint64) error {
	return s.channelRepository.DeleteChannel(ctx, id)
}

func (s *ChannelService) normalize(ctx context.Context, input domain.CatalogInput, excludeID uint64) (domain.CatalogInput, error) {
	input, err := normalizeCatalogInput(input)
	if err != nil {
		return domain.CatalogInput{}, err
	}
	taken, err := s.channelRepository.ChannelNameTaken(ctx, input.Name, excludeID)
	if err != nil {
		return domain.CatalogInput{}, err
	}
	if taken {
		return domain.CatalogInput{}, fmt.Errorf("channel %q: %w", input.Name, domain.ErrDuplicate)
	}
	return input, nil
}

var _ ports.ChannelService = (*ChannelService)(nil)
