package stats

import (
	"fmt"
	"time"

	"teamboard/internal/core/domain"
)

type FilterView string

const (
	ViewAll        FilterView = "all"
	ViewPending    FilterView = FilterView(domain.TaskStatusPending)
	ViewInProgress FilterView = FilterView(domain.TaskStatusInProgress)
	ViewCompleted  FilterView = FilterView(domain.TaskStatusCompleted)
)

// ParseFilterView maps a dashboard tab name to a view. An empty value means "all".
func ParseFilterView(value string) (FilterView, error) {
	switch FilterView(value) {
	case "", ViewAll:
		return ViewAll, nil
	case ViewPending, ViewInProgress, ViewCompleted:
		return FilterView(value), nil
	default:
		return "", domain.NewValidationError("view", fmt.Sprintf("unknown view %q", value))
	}
}

// Filter returns the tasks visible under view. The input is never modified.
func Filter(tasks []domain.Task, view FilterView) []domain.Task {
	if view == ViewAll || view == "" {
		return collect(tasks, func(domain.Task) bool { return true })
	}
	return ByStatus(tasks, domain.TaskStatus(view))
}

func ByStatus(tasks []domain.Task, status domain.TaskStatus) []domain.Task {
	return collect(tasks, func(task domain.Task) bool { return task.Status == status })
}

func ByUser(tasks []domain.Task, userID uint64) []domain.Task {
	return collect(tasks, func(task domain.Task) bool { return task.AssignedTo.ID == userID })
}

func ByType(tasks []domain.Task, taskType domain.TaskType) []domain.Task {
	return collect(tasks, func(task domain.Task) bool { return task.Type == taskType })
}

// DayBounds returns local midnight of now's day and the following midnight,
// both in now's location.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// Today keeps tasks created in [start of day, start of next day).
func Today(tasks []domain.Task, now time.Time) []domain.Task {
	start, end := DayBounds(now)
	return collect(tasks, func(task domain.Task) bool {
		return createdWithin(task, start, end)
	})
}

func createdWithin(task domain.Task, start, end time.Time) bool {
	return !task.CreatedAt.Before(start) && task.CreatedAt.Before(end)
}

func collect(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if keep(task) {
			out = append(out, task.Clone())
		}
	}
	return out
}
