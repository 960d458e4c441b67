package ports

import (
	"context"
	"time"

	"teamboard/internal/core/domain"
)

// TaskStore is the in-process task collection. Implementations publish a
// snapshot of the whole collection to every subscriber after each mutation.
type TaskStore interface {
	Subscribe(fn func(snapshot []domain.Task)) Subscription
	Current() []domain.Task
	Get(id uint64) (domain.Task, bool)
	Add(draft domain.TaskDraft) (domain.Task, error)
	Update(id uint64, patch domain.TaskPatch) (domain.Task, error)
	Delete(id uint64) bool
	ReplaceAll(tasks []domain.Task) error
	ByUser(userID uint64) []domain.Task
	ByStatus(status domain.TaskStatus) []domain.Task
	Today(now time.Time) []domain.Task
}

type Subscription interface {
	Unsubscribe()
}

type TaskService interface {
	ListTasks(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error)
	CreateSupportTask(ctx context.Context, input domain.SupportTaskInput) (domain.Task, error)
	CreateMediaTask(ctx context.Context, input domain.MediaTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	StartTask(ctx context.Context, id uint64) (domain.Task, error)
	CompleteTask(ctx context.Context, id uint64) (domain.Task, error)
	SetProgress(ctx context.Context, id uint64, progress int) (domain.Task, error)
	Subscribe(fn func(snapshot []domain.Task)) Subscription
}

type DashboardService interface {
	Performance(ctx context.Context) ([]domain.UserPerformance, error)
	Workload(ctx context.Context, userID uint64, taskType domain.TaskType) (domain.WorkloadSummary, error)
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}
