package domain

import "time"

type TaskType string

const (
	TaskTypeSupport TaskType = "support"
	TaskTypeMedia   TaskType = "media"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeSupport, TaskTypeMedia:
		return true
	default:
		return false
	}
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

const (
	MinProgress = 0
	MaxProgress = 100
)

// EntityRef is a copy of a user, shop or channel taken when the task was
// created. It is not kept in sync with the referenced entity.
type EntityRef struct {
	ID   uint64
	Name string
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	Type        TaskType
	Status      TaskStatus
	Priority    TaskPriority
	AssignedTo  EntityRef
	Shop        *EntityRef
	Channel     *EntityRef
	DueDate     *time.Time
	CreatedAt   time.Time
	Progress    int
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	out := t
	if t.Shop != nil {
		shop := *t.Shop
		out.Shop = &shop
	}
	if t.Channel != nil {
		channel := *t.Channel
		out.Channel = &channel
	}
	if t.DueDate != nil {
		dueDate := *t.DueDate
		out.DueDate = &dueDate
	}
	return out
}

// TaskDraft is what callers hand to the store; ID, Status, Progress and
// CreatedAt are assigned on insert.
type TaskDraft struct {
	Title       string
	Description string
	Type        TaskType
	Priority    TaskPriority
	AssignedTo  EntityRef
	Shop        *EntityRef
	Channel     *EntityRef
	DueDate     *time.Time
}

// TaskPatch carries the fields of a partial update. Nil means "leave as is".
// ShopSet/ChannelSet/DueDateSet distinguish an explicit null from an absent field.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	AssignedTo  *EntityRef
	Shop        *EntityRef
	ShopSet     bool
	Channel     *EntityRef
	ChannelSet  bool
	DueDate     *time.Time
	DueDateSet  bool
	Progress    *int
}

type TaskQuery struct {
	View      string
	UserID    uint64
	Type      TaskType
	TodayOnly bool
}

type SupportTaskInput struct {
	UserID          uint64
	ShopID          uint64
	ListingQuantity int
	ListingNotes    string
	ChannelID       *uint64
	VideoType       string
	VideoQuantity   int
	Priority        TaskPriority
	DueDate         *time.Time
}

type MediaTaskInput struct {
	UserID        uint64
	ChannelID     uint64
	VideoType     string
	VideoQuantity int
	VideoFormat   string
	VideoNotes    string
	Priority      TaskPriority
	DueDate       *time.Time
}
