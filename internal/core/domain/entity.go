package domain

import "time"

type User struct {
	ID        uint64
	Name      string
	Email     string
	CreatedAt time.Time
}

type Shop struct {
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
}

type Channel struct {
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
}

type UserInput struct {
	Name  string
	Email string
}

// CatalogInput is the write payload shared by shops and channels.
type CatalogInput struct {
	Name        string
	Description *string
}

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func NewPagination(page Page, total int) Pagination {
	totalPages := 0
	if page.Limit > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return Pagination{
		Page:       page.Number,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
