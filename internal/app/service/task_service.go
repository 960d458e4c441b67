package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teamboard/internal/app/stats"
	"teamboard/internal/app/taskstore"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

const (
	defaultDueIn       = 7 * 24 * time.Hour
	defaultVideoFormat = "short"
	startedProgress    = 10
)

type TaskService struct {
	store    ports.TaskStore
	users    ports.UserRepository
	shops    ports.ShopRepository
	channels ports.ChannelRepository
	now      func() time.Time
}

func NewTaskService(
	store ports.TaskStore,
	users ports.UserRepository,
	shops ports.ShopRepository,
	channels ports.ChannelRepository,
) *TaskService {
	return &TaskService{
		store:    store,
		users:    users,
		shops:    shops,
		channels: channels,
		now:      time.Now,
	}
}

// ListTasks applies the query filters in order: user, type, day, view.
func (s *TaskService) ListTasks(_ context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	view, err := stats.ParseFilterView(query.View)
	if err != nil {
		return nil, err
	}
	if query.Type != "" && !query.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be support or media")
	}

	tasks := s.store.Current()
	if query.UserID != 0 {
		tasks = stats.ByUser(tasks, query.UserID)
	}
	if query.Type != "" {
		tasks = stats.ByType(tasks, query.Type)
	}
	if query.TodayOnly {
		tasks = stats.Today(tasks, s.now())
	}
	return stats.Filter(tasks, view), nil
}

func (s *TaskService) GetTask(_ context.Context, id uint64) (domain.Task, error) {
	task, ok := s.store.Get(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

// CreateTask stores draft as is, filling in the names of references that only
// carry an id.
func (s *TaskService) CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	if err := taskstore.ValidateDraft(draft); err != nil {
		return domain.Task{}, err
	}

	assignee, err := s.resolveUser(ctx, &draft.AssignedTo)
	if err != nil {
		return domain.Task{}, err
	}
	draft.AssignedTo = *assignee
	if draft.Shop, err = s.resolveShop(ctx, draft.Shop); err != nil {
		return domain.Task{}, err
	}
	if draft.Channel, err = s.resolveChannel(ctx, draft.Channel); err != nil {
		return domain.Task{}, err
	}
	return s.store.Add(draft)
}

// CreateSupportTask resolves the referenced entities and builds the task the
// way the support form does.
func (s *TaskService) CreateSupportTask(ctx context.Context, input domain.SupportTaskInput) (domain.Task, error) {
	if input.ListingQuantity < 1 {
		return domain.Task{}, domain.NewValidationError("listing_quantity", "must be at least 1")
	}

	user, err := s.users.GetUser(ctx, input.UserID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("resolve user %d: %w", input.UserID, err)
	}
	shop, err := s.shops.GetShop(ctx, input.ShopID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("resolve shop %d: %w", input.ShopID, err)
	}

	var channelRef *domain.EntityRef
	if input.ChannelID != nil {
		channel, err := s.channels.GetChannel(ctx, *input.ChannelID)
		if err != nil {
			return domain.Task{}, fmt.Errorf("resolve channel %d: %w", *input.ChannelID, err)
		}
		channelRef = &domain.EntityRef{ID: channel.ID, Name: channel.Name}
	}

	description := fmt.Sprintf("Support task for %s: %d listings", shop.Name, input.ListingQuantity)
	if notes := strings.TrimSpace(input.ListingNotes); notes != "" {
		description += ". Notes: " + notes
	}

	return s.store.Add(domain.TaskDraft{
		Title:       fmt.Sprintf("Support %s - %d listings", shop.Name, input.ListingQuantity),
		Description: description,
		Type:        domain.TaskTypeSupport,
		Priority:    input.Priority,
		AssignedTo:  domain.EntityRef{ID: user.ID, Name: user.Name},
		Shop:        &domain.EntityRef{ID: shop.ID, Name: shop.Name},
		Channel:     channelRef,
		DueDate:     s.dueDateOrDefault(input.DueDate),
	})
}

func (s *TaskService) CreateMediaTask(ctx context.Context, input domain.MediaTaskInput) (domain.Task, error) {
	videoType := strings.TrimSpace(input.VideoType)
	if videoType == "" {
		return domain.Task{}, domain.NewValidationError("video_type", "is required")
	}
	if input.VideoQuantity < 1 {
		return domain.Task{}, domain.NewValidationError("video_quantity", "must be at least 1")
	}
	videoFormat := strings.TrimSpace(input.VideoFormat)
	if videoFormat == "" {
		videoFormat = defaultVideoFormat
	}

	user, err := s.users.GetUser(ctx, input.UserID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("resolve user %d: %w", input.UserID, err)
	}
	channel, err := s.channels.GetChannel(ctx, input.ChannelID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("resolve channel %d: %w", input.ChannelID, err)
	}

	description := fmt.Sprintf("Media task for %s: Create %d %s videos (%s)", channel.Name, input.VideoQuantity, videoType, videoFormat)
	if notes := strings.TrimSpace(input.VideoNotes); notes != "" {
		description += ". Notes: " + notes
	}

	return s.store.Add(domain.TaskDraft{
		Title:       fmt.Sprintf("%s video for %s - %d videos", videoType, channel.Name, input.VideoQuantity),
		Description: description,
		Type:        domain.TaskTypeMedia,
		Priority:    input.Priority,
		AssignedTo:  domain.EntityRef{ID: user.ID, Name: user.Name},
		Channel:     &domain.EntityRef{ID: channel.ID, Name: channel.Name},
		DueDate:     s.dueDateOrDefault(input.DueDate),
	})
}

// UpdateTask resolves the names of references that only carry an id before
// merging the patch.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, patch domain.TaskPatch) (domain.Task, error) {
	if _, ok := s.store.Get(id); !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var err error
	if patch.AssignedTo, err = s.resolveUser(ctx, patch.AssignedTo); err != nil {
		return domain.Task{}, err
	}
	if patch.Shop, err = s.resolveShop(ctx, patch.Shop); err != nil {
		return domain.Task{}, err
	}
	if patch.Channel, err = s.resolveChannel(ctx, patch.Channel); err != nil {
		return domain.Task{}, err
	}
	return s.store.Update(id, patch)
}

func (s *TaskService) DeleteTask(_ context.Context, id uint64) error {
	if !s.store.Delete(id) {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) StartTask(_ context.Context, id uint64) (domain.Task, error) {
	status := domain.TaskStatusInProgress
	progress := startedProgress
	return s.store.Update(id, domain.TaskPatch{Status: &status, Progress: &progress})
}

func (s *TaskService) CompleteTask(_ context.Context, id uint64) (domain.Task, error) {
	status := domain.TaskStatusCompleted
	progress := domain.MaxProgress
	return s.store.Update(id, domain.TaskPatch{Status: &status, Progress: &progress})
}

func (s *TaskService) SetProgress(_ context.Context, id uint64, progress int) (domain.Task, error) {
	return s.store.Update(id, domain.TaskPatch{Progress: &progress})
}

func (s *TaskService) Subscribe(fn func(snapshot []domain.Task)) ports.Subscription {
	return s.store.Subscribe(fn)
}

func (s *TaskService) resolveUser(ctx context.Context, ref *domain.EntityRef) (*domain.EntityRef, error) {
	if ref == nil || ref.ID == 0 || ref.Name != "" {
		return ref, nil
	}
	user, err := s.users.GetUser(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve user %d: %w", ref.ID, err)
	}
	return &domain.EntityRef{ID: user.ID, Name: user.Name}, nil
}

func (s *TaskService) resolveShop(ctx context.Context, ref *domain.EntityRef) (*domain.EntityRef, error) {
	if ref == nil || ref.ID == 0 || ref.Name != "" {
		return ref, nil
	}
	shop, err := s.shops.GetShop(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve shop %d: %w", ref.ID, err)
	}
	return &domain.EntityRef{ID: shop.ID, Name: shop.Name}, nil
}

func (s *TaskService) resolveChannel(ctx context.Context, ref *domain.EntityRef) (*domain.EntityRef, error) {
	if ref == nil || ref.ID == 0 || ref.Name != "" {
		return ref, nil
	}
	channel, err := s.channels.GetChannel(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve channel %d: %w", ref.ID, err)
	}
	return &domain.EntityRef{ID: channel.ID, Name: channel.Name}, nil
}

func (s *TaskService) dueDateOrDefault(dueDate *time.Time) *time.Time {
	if dueDate != nil {
		value := *dueDate
		return &value
	}
	value := s.now().Add(defaultDueIn)
	return &value
}

var _ ports.TaskService = (*TaskService)(nil)
