// Package taskstore keeps the session's tasks in memory and pushes a full
// snapshot of the collection to every subscriber after each mutation.
//
// Mutations and their deliveries are serialized: a mutating call returns only
// after every subscriber has received the new snapshot, so subscribers observe
// snapshots in mutation order. Current, Get and the query methods are
// lock-free and can be called from a subscriber callback. Calling Subscribe or
// any mutating method from a callback deadlocks.
package taskstore

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"teamboard/internal/app/stats"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

type Option func(*Store)

// WithClock replaces time.Now for CreatedAt stamping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[[]domain.Task]
	lastID   uint64
	now      func() time.Time

	subMu       sync.Mutex
	subscribers []subscriber
	nextSubID   uint64
}

type subscriber struct {
	id uint64
	fn func([]domain.Task)
}

var _ ports.TaskStore = (*Store)(nil)

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	empty := []domain.Task{}
	s.snapshot.Store(&empty)
	return s
}

// Subscribe registers fn and immediately hands it the current snapshot. The
// first delivery happens under the mutation lock so fn never sees a snapshot
// older than the one it started with.
func (s *Store) Subscribe(fn func(snapshot []domain.Task)) ports.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	deliver(subscriber{id: id, fn: fn}, s.load())
	return &Subscription{store: s, id: id}
}

func (s *Store) Current() []domain.Task {
	return cloneTasks(s.load())
}

func (s *Store) Get(id uint64) (domain.Task, bool) {
	for _, task := range s.load() {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return domain.Task{}, false
}

func (s *Store) Add(draft domain.TaskDraft) (domain.Task, error) {
	if err := ValidateDraft(draft); err != nil {
		return domain.Task{}, err
	}

	priority := draft.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	task := domain.Task{
		ID:          s.lastID,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Type:        draft.Type,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
		AssignedTo:  draft.AssignedTo,
		Shop:        draft.Shop,
		Channel:     draft.Channel,
		DueDate:     draft.DueDate,
		CreatedAt:   s.now(),
		Progress:    domain.MinProgress,
	}
	task = task.Clone()

	current := s.load()
	next := make([]domain.Task, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, task)
	s.publishLocked(next)

	zap.L().Debug("task added", zap.Uint64("task_id", task.ID), zap.String("type", string(task.Type)))
	return task.Clone(), nil
}

// Update merges patch into the task with the given id, keeping its position.
// Progress is clamped to [0, 100]; status changes are not guarded.
func (s *Store) Update(id uint64, patch domain.TaskPatch) (domain.Task, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load()
	idx := indexOf(current, id)
	if idx < 0 {
		return domain.Task{}, fmt.Errorf("update task %d: %w", id, domain.ErrTaskNotFound)
	}

	updated := applyPatch(current[idx].Clone(), patch)
	next := make([]domain.Task, len(current))
	copy(next, current)
	next[idx] = updated
	s.publishLocked(next)

	zap.L().Debug("task updated", zap.Uint64("task_id", id), zap.String("status", string(updated.Status)))
	return updated.Clone(), nil
}

// Delete reports whether a task was removed. Nothing is published otherwise.
func (s *Store) Delete(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.load()
	idx := indexOf(current, id)
	if idx < 0 {
		return false
	}

	next := make([]domain.Task, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	s.publishLocked(next)

	zap.L().Debug("task deleted", zap.Uint64("task_id", id))
	return true
}

// ReplaceAll installs tasks as the whole collection and resets the id counter
// to the highest id present, so the next Add gets max+1. The collection is
// left untouched if any task fails validation.
func (s *Store) ReplaceAll(tasks []domain.Task) error {
	next := make([]domain.Task, 0, len(tasks))
	seen := make(map[uint64]struct{}, len(tasks))
	var maxID uint64
	for _, task := range tasks {
		if err := validateInstalled(task); err != nil {
			return err
		}
		if _, dup := seen[task.ID]; dup {
			return domain.NewValidationError("id", fmt.Sprintf("duplicate id %d", task.ID))
		}
		seen[task.ID] = struct{}{}
		if task.ID > maxID {
			maxID = task.ID
		}
		task = task.Clone()
		task.Progress = clampProgress(task.Progress)
		next = append(next, task)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = maxID
	s.publishLocked(next)

	zap.L().Debug("tasks replaced", zap.Int("count", len(next)), zap.Uint64("next_id", maxID+1))
	return nil
}

func (s *Store) ByUser(userID uint64) []domain.Task {
	return stats.ByUser(s.load(), userID)
}

func (s *Store) ByStatus(status domain.TaskStatus) []domain.Task {
	return stats.ByStatus(s.load(), status)
}

func (s *Store) Today(now time.Time) []domain.Task {
	return stats.Today(s.load(), now)
}

func (s *Store) load() []domain.Task {
	return *s.snapshot.Load()
}

// publishLocked must be called with s.mu held. The slice passed in becomes
// the published snapshot and must not be modified afterwards.
func (s *Store) publishLocked(next []domain.Task) {
	s.snapshot.Store(&next)

	s.subMu.Lock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, sub := range subs {
		deliver(sub, next)
	}
}

func deliver(sub subscriber, snapshot []domain.Task) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("task subscriber panicked", zap.Uint64("subscriber_id", sub.id), zap.Any("panic", r))
		}
	}()
	sub.fn(cloneTasks(snapshot))
}

func (s *Store) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
			return
		}
	}
}

type Subscription struct {
	store *Store
	id    uint64
	once  sync.Once
}

func (sub *Subscription) Unsubscribe() {
	sub.once.Do(func() {
		sub.store.unsubscribe(sub.id)
	})
}

func indexOf(tasks []domain.Task, id uint64) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		out[i] = task.Clone()
	}
	return out
}
