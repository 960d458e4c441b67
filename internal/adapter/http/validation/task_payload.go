package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"teamboard/internal/adapter/http/dto"
	"teamboard/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildTaskDraft(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.TaskDraft, error) {
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.TaskDraft{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TaskDraft{}, ErrInvalidTaskPayload
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.TaskDraft{}, err
	}

	return domain.TaskDraft{
		Title:       title,
		Description: req.Description,
		Type:        domain.TaskType(req.Type),
		Priority:    priorityOf(req.Priority),
		AssignedTo:  domain.EntityRef{ID: req.AssignedToID},
		Shop:        refOf(req.ShopID),
		Channel:     refOf(req.ChannelID),
		DueDate:     dueDate,
	}, nil
}

// BuildTaskPatch maps a PATCH body to a TaskPatch. An explicit null clears
// shop_id, channel_id, due_date and description; it is rejected for every
// other field.
func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "status", "priority", "assigned_to_id", "progress"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
	}

	var patch domain.TaskPatch

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &value
	}

	if hasJSONField(raw, "description") {
		value := ""
		if req.Description != nil {
			value = *req.Description
		}
		patch.Description = &value
	}

	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		patch.Status = &value
	}

	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		patch.Priority = &value
	}

	if req.AssignedToID != nil {
		patch.AssignedTo = &domain.EntityRef{ID: *req.AssignedToID}
	}

	if hasJSONField(raw, "shop_id") {
		patch.ShopSet = true
		patch.Shop = refOf(req.ShopID)
	}

	if hasJSONField(raw, "channel_id") {
		patch.ChannelSet = true
		patch.Channel = refOf(req.ChannelID)
	}

	if hasJSONField(raw, "due_date") {
		dueDate, err := parseOptionalDate(req.DueDate)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.DueDateSet = true
		patch.DueDate = dueDate
	}

	patch.Progress = req.Progress
	return patch, nil
}

func BuildSupportTaskInput(req dto.CreateSupportTaskRequest) (domain.SupportTaskInput, error) {
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.SupportTaskInput{}, err
	}

	return domain.SupportTaskInput{
		UserID:          req.UserID,
		ShopID:          req.ShopID,
		ListingQuantity: req.ListingQuantity,
		ListingNotes:    req.ListingNotes,
		ChannelID:       req.ChannelID,
		VideoType:       req.VideoType,
		VideoQuantity:   req.VideoQuantity,
		Priority:        priorityOf(req.Priority),
		DueDate:         dueDate,
	}, nil
}

func BuildMediaTaskInput(req dto.CreateMediaTaskRequest) (domain.MediaTaskInput, error) {
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return domain.MediaTaskInput{}, err
	}

	return domain.MediaTaskInput{
		UserID:        req.UserID,
		ChannelID:     req.ChannelID,
		VideoType:     req.VideoType,
		VideoQuantity: req.VideoQuantity,
		VideoFormat:   req.VideoFormat,
		VideoNotes:    req.VideoNotes,
		Priority:      priorityOf(req.Priority),
		DueDate:       dueDate,
	}, nil
}

// ParseDate accepts RFC 3339 timestamps and plain 2006-01-02 dates.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidTaskPayload
	}
	return parsed, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func priorityOf(value *string) domain.TaskPriority {
	if value == nil {
		return ""
	}
	return domain.TaskPriority(*value)
}

func refOf(id *uint64) *domain.EntityRef {
	if id == nil {
		return nil
	}
	return &domain.EntityRef{ID: *id}
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "description", "status", "priority", "assigned_to_id",
		"shop_id", "channel_id", "due_date", "progress",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
