package taskstore

import (
	"fmt"
	"strings"

	"teamboard/internal/core/domain"
)

// ValidateDraft checks the fields Add needs. Support tasks must name a shop and
// media tasks a channel; the other reference is optional.
func ValidateDraft(draft domain.TaskDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	if !draft.Type.IsValid() {
		return domain.NewValidationError("type", "must be support or media")
	}
	if draft.Priority != "" && !draft.Priority.IsValid() {
		return domain.NewValidationError("priority", "must be low, medium, high or urgent")
	}
	if draft.AssignedTo.ID == 0 {
		return domain.NewValidationError("assigned_to", "is required")
	}

	switch draft.Type {
	case domain.TaskTypeSupport:
		if draft.Shop == nil || draft.Shop.ID == 0 {
			return domain.NewValidationError("shop", "is required for support tasks")
		}
	case domain.TaskTypeMedia:
		if draft.Channel == nil || draft.Channel.ID == 0 {
			return domain.NewValidationError("channel", "is required for media tasks")
		}
	}
	return nil
}

// validateInstalled checks a fully formed task handed to ReplaceAll. Status and
// type must be known values so every task lands in exactly one status bucket.
func validateInstalled(task domain.Task) error {
	if task.ID == 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if !task.Type.IsValid() {
		return domain.NewValidationError("type", fmt.Sprintf("task %d: must be support or media", task.ID))
	}
	if !task.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("task %d: must be pending, in-progress or completed", task.ID))
	}
	if task.Priority != "" && !task.Priority.IsValid() {
		return domain.NewValidationError("priority", fmt.Sprintf("task %d: must be low, medium, high or urgent", task.ID))
	}
	return nil
}

func validatePatch(patch domain.TaskPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.NewValidationError("title", "must not be blank")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return domain.NewValidationError("status", "must be pending, in-progress or completed")
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return domain.NewValidationError("priority", "must be low, medium, high or urgent")
	}
	if patch.AssignedTo != nil && patch.AssignedTo.ID == 0 {
		return domain.NewValidationError("assigned_to", "must reference a user")
	}
	return nil
}

func applyPatch(task domain.Task, patch domain.TaskPatch) domain.Task {
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.AssignedTo != nil {
		task.AssignedTo = *patch.AssignedTo
	}
	if patch.ShopSet || patch.Shop != nil {
		task.Shop = copyRef(patch.Shop)
	}
	if patch.ChannelSet || patch.Channel != nil {
		task.Channel = copyRef(patch.Channel)
	}
	if patch.DueDateSet || patch.DueDate != nil {
		if patch.DueDate == nil {
			task.DueDate = nil
		} else {
			dueDate := *patch.DueDate
			task.DueDate = &dueDate
		}
	}
	if patch.Progress != nil {
		task.Progress = clampProgress(*patch.Progress)
	}
	return task
}

func copyRef(ref *domain.EntityRef) *domain.EntityRef {
	if ref == nil {
		return nil
	}
	out := *ref
	return &out
}

func clampProgress(progress int) int {
	if progress < domain.MinProgress {
		return domain.MinProgress
	}
	if progress > domain.MaxProgress {
		return domain.MaxProgress
	}
	return progress
}
