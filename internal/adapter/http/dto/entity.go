package dto

type UserItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// CatalogItem is the response body for shops and channels.
type CatalogItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type CatalogRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type PaginationItem struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type PageResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationItem `json:"pagination"`
}
