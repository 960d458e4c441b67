package service

import (
	"context"
	"fmt"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// ListUsers returns every user when page is nil, otherwise one page plus its
// pagination block.
func (s *UserService) ListUsers(ctx context.Context, page *domain.Page) ([]domain.User, *domain.Pagination, error) {
	page = normalizePage(page)
	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	if page == nil {
		return users, nil, nil
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return nil, nil, err
	}
	pagination := domain.NewPagination(*page, total)
	return users, &pagination, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.GetUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, input domain.UserInput) (domain.User, error) {
	input, err := s.normalize(ctx, input, 0)
	if err != nil {
		return domain.User{}, err
	}
	return s.userRepository.CreateUser(ctx, input)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, input domain.UserInput) (domain.User, error) {
	if _, err := s.userRepository.GetUser(ctx, id); err != nil {
		return domain.User{}, err
	}
	input, err := s.normalize(ctx, input, id)
	if err != nil {
		return domain.User{}, err
	}
	return s.userRepository.UpdateUser(ctx, id, input)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *UserService) normalize(ctx context.Context, input domain.UserInput, excludeID uint64) (domain.UserInput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return domain.UserInput{}, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return domain.UserInput{}, err
	}

	taken, err := s.userRepository.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return domain.UserInput{}, err
	}
	if taken {
		return domain.UserInput{}, fmt.Errorf("email %s: %w", email, domain.ErrDuplicate)
	}
	return domain.UserInput{Name: name, Email: email}, nil
}

var _ ports.UserService = (*UserService)(nil)
