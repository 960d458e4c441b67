package mapper

import (
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/app/stats"
	"teamboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Type:        string(task.Type),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssignedTo:  toRefItem(task.AssignedTo),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		Progress:    task.Progress,
		Overdue:     task.Status != domain.TaskStatusCompleted && stats.IsOverdue(task, now),
	}

	if task.Shop != nil {
		shop := toRefItem(*task.Shop)
		item.Shop = &shop
	}

	if task.Channel != nil {
		channel := toRefItem(*task.Channel)
		item.Channel = &channel
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}

func ToTaskSnapshotMessage(tasks []domain.Task, now time.Time) dto.TaskSnapshotMessage {
	return dto.TaskSnapshotMessage{Tasks: ToTaskItems(tasks, now)}
}

func toRefItem(ref domain.EntityRef) dto.EntityRefItem {
	return dto.EntityRefItem{ID: ref.ID, Name: ref.Name}
}
