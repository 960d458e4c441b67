package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"teamboard/internal/core/domain"
)

const (
	minNameLength        = 2
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxEmailLength       = 255
)

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)
	if length < minNameLength || length > maxNameLength {
		return "", domain.NewValidationError("name", "must be between 2 and 100 characters")
	}
	return name, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.NewValidationError("email", "is required")
	}
	if len(email) > maxEmailLength {
		return "", domain.NewValidationError("email", "must be at most 255 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.NewValidationError("email", "must be a valid address")
	}
	return strings.ToLower(email), nil
}

func normalizeCatalogInput(input domain.CatalogInput) (domain.CatalogInput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return domain.CatalogInput{}, err
	}

	out := domain.CatalogInput{Name: name}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return domain.CatalogInput{}, domain.NewValidationError("description", "must be at most 500 characters")
		}
		if description != "" {
			out.Description = &description
		}
	}
	return out, nil
}

func normalizePage(page *domain.Page) *domain.Page {
	if page == nil {
		return nil
	}
	out := *page
	if out.Number < 1 {
		out.Number = 1
	}
	if out.Limit < 1 {
		out.Limit = 10
	}
	if out.Limit > 100 {
		out.Limit = 100
	}
	return &out
}
