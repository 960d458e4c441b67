package validation

import (
	"errors"
	"strconv"
	"strings"

	"teamboard/internal/core/domain"
)

var ErrInvalidQuery = errors.New("invalid query")

// ParsePage returns nil when neither page nor limit was sent, which asks the
// services for the unpaginated list.
func ParsePage(page string, hasPage bool, limit string, hasLimit bool) (*domain.Page, error) {
	if !hasPage && !hasLimit {
		return nil, nil
	}

	out := domain.Page{Number: 1, Limit: 10}
	if hasPage {
		value, err := strconv.Atoi(strings.TrimSpace(page))
		if err != nil || value < 1 {
			return nil, ErrInvalidQuery
		}
		out.Number = value
	}
	if hasLimit {
		value, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil || value < 1 || value > 100 {
			return nil, ErrInvalidQuery
		}
		out.Limit = value
	}
	return &out, nil
}

// ParseOptionalID parses an optional positive id filter; empty means "any".
func ParseOptionalID(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidQuery
	}
	return id, nil
}

func ParseOptionalBool(value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, ErrInvalidQuery
	}
	return parsed, nil
}
