package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{TaskStatusPending, true},
		{TaskStatusInProgress, true},
		{TaskStatusCompleted, true},
		{"in_progress", false},
		{"done", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTaskType_IsValid(t *testing.T) {
	assert.True(t, TaskTypeSupport.IsValid())
	assert.True(t, TaskTypeMedia.IsValid())
	assert.False(t, TaskType("video").IsValid())
	assert.False(t, TaskType("").IsValid())
}

func TestTaskPriority_IsValid(t *testing.T) {
	for _, p := range []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent} {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, TaskPriority("critical").IsValid())
	assert.False(t, TaskPriority("").IsValid())
}

func TestTask_Clone(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	task := Task{
		ID:      1,
		Shop:    &EntityRef{ID: 1, Name: "Tech Store"},
		Channel: &EntityRef{ID: 2, Name: "Gaming"},
		DueDate: &due,
	}

	clone := task.Clone()
	clone.Shop.Name = "x"
	clone.Channel.Name = "y"
	*clone.DueDate = due.AddDate(1, 0, 0)

	assert.Equal(t, "Tech Store", task.Shop.Name)
	assert.Equal(t, "Gaming", task.Channel.Name)
	assert.Equal(t, due, *task.DueDate)
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError("title", "is required"))

	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(ErrTaskNotFound))
	assert.EqualError(t, err, "create: invalid title: is required")

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "title", validationErr.Field)
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, Page{Number: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Page{Number: 3, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 21, TotalPages: 3}, NewPagination(Page{Number: 2, Limit: 10}, 21))
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, NewPagination(Page{Number: 1, Limit: 10}, 0))
	assert.Equal(t, 0, NewPagination(Page{Number: 1}, 5).TotalPages)
}
