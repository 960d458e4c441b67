package dto

type EntityRefItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type TaskItem struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	AssignedTo  EntityRefItem  `json:"assigned_to"`
	Shop        *EntityRefItem `json:"shop,omitempty"`
	Channel     *EntityRefItem `json:"channel,omitempty"`
	DueDate     *string        `json:"due_date,omitempty"`
	CreatedAt   string         `json:"created_at"`
	Progress    int            `json:"progress"`
	Overdue     bool           `json:"overdue"`
}

// TaskSnapshotMessage is one frame of the task stream.
type TaskSnapshotMessage struct {
	Tasks []TaskItem `json:"tasks"`
}

type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description" binding:"max=65535"`
	Type         string  `json:"type" binding:"required,oneof=support media"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssignedToID uint64  `json:"assigned_to_id" binding:"required,gt=0"`
	ShopID       *uint64 `json:"shop_id" binding:"omitempty,gt=0"`
	ChannelID    *uint64 `json:"channel_id" binding:"omitempty,gt=0"`
	DueDate      *string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	Status       *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssignedToID *uint64 `json:"assigned_to_id" binding:"omitempty,gt=0"`
	ShopID       *uint64 `json:"shop_id" binding:"omitempty,gt=0"`
	ChannelID    *uint64 `json:"channel_id" binding:"omitempty,gt=0"`
	DueDate      *string `json:"due_date"`
	Progress     *int    `json:"progress"`
}

type CreateSupportTaskRequest struct {
	UserID          uint64  `json:"user_id" binding:"required,gt=0"`
	ShopID          uint64  `json:"shop_id" binding:"required,gt=0"`
	ListingQuantity int     `json:"listing_quantity" binding:"required,gte=1"`
	ListingNotes    string  `json:"listing_notes" binding:"max=1000"`
	ChannelID       *uint64 `json:"channel_id" binding:"omitempty,gt=0"`
	VideoType       string  `json:"video_type" binding:"max=100"`
	VideoQuantity   int     `json:"video_quantity" binding:"gte=0"`
	Priority        *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate         *string `json:"due_date"`
}

type CreateMediaTaskRequest struct {
	UserID        uint64  `json:"user_id" binding:"required,gt=0"`
	ChannelID     uint64  `json:"channel_id" binding:"required,gt=0"`
	VideoType     string  `json:"video_type" binding:"required,max=100"`
	VideoQuantity int     `json:"video_quantity" binding:"required,gte=1"`
	VideoFormat   string  `json:"video_format" binding:"omitempty,oneof=short long story live"`
	VideoNotes    string  `json:"video_notes" binding:"max=1000"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate       *string `json:"due_date"`
}

type SetProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
