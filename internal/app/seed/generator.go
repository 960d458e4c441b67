// Package seed produces demo task sets for the in-memory store, either
// generated from the known users, shops and channels or read from a JSON
// fixture, and installs them after a delay.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"teamboard/internal/core/domain"
)

var (
	videoTypes = []string{"Product Demo", "Tutorial", "Entertainment", "Promotional", "Educational", "Behind the Scenes"}
	statuses   = []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted}
	priorities = []domain.TaskPriority{
		domain.TaskPriorityLow,
		domain.TaskPriorityMedium,
		domain.TaskPriorityHigh,
		domain.TaskPriorityUrgent,
	}
)

const maxAgeDays = 3

type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Generate builds count tasks with ids 1..count. Support tasks need a shop and
// media tasks a channel, so a type is only picked when its catalog is non-empty.
func (g *Generator) Generate(count int, users []domain.User, shops []domain.Shop, channels []domain.Channel) ([]domain.Task, error) {
	if count <= 0 {
		return []domain.Task{}, nil
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("generate tasks: %w", domain.NewValidationError("users", "at least one user is required"))
	}
	if len(shops) == 0 && len(channels) == 0 {
		return nil, fmt.Errorf("generate tasks: %w", domain.NewValidationError("catalog", "at least one shop or channel is required"))
	}

	now := g.now()
	tasks := make([]domain.Task, 0, count)
	for i := 0; i < count; i++ {
		user := users[g.rng.Intn(len(users))]
		task := domain.Task{
			ID:         uint64(i + 1),
			Status:     statuses[g.rng.Intn(len(statuses))],
			Priority:   priorities[g.rng.Intn(len(priorities))],
			AssignedTo: domain.EntityRef{ID: user.ID, Name: user.Name},
			CreatedAt:  now.Add(-time.Duration(g.rng.Int63n(int64(maxAgeDays * 24 * time.Hour)))),
		}

		if len(channels) == 0 || (len(shops) > 0 && g.rng.Intn(2) == 0) {
			shop := shops[g.rng.Intn(len(shops))]
			listings := 1 + g.rng.Intn(50)
			task.Type = domain.TaskTypeSupport
			task.Shop = &domain.EntityRef{ID: shop.ID, Name: shop.Name}
			task.Title = fmt.Sprintf("Support %s - %d listings", shop.Name, listings)
			task.Description = fmt.Sprintf("Support task for %s: %d listings", shop.Name, listings)
		} else {
			channel := channels[g.rng.Intn(len(channels))]
			videos := 1 + g.rng.Intn(10)
			videoType := videoTypes[g.rng.Intn(len(videoTypes))]
			task.Type = domain.TaskTypeMedia
			task.Channel = &domain.EntityRef{ID: channel.ID, Name: channel.Name}
			task.Title = fmt.Sprintf("%s video for %s - %d videos", videoType, channel.Name, videos)
			task.Description = fmt.Sprintf("Media task for %s: Create %d %s videos (short)", channel.Name, videos, videoType)
		}

		switch task.Status {
		case domain.TaskStatusCompleted:
			task.Progress = domain.MaxProgress
		case domain.TaskStatusInProgress:
			task.Progress = 10 + g.rng.Intn(80)
		case domain.TaskStatusPending:
			task.Progress = domain.MinProgress
		}

		dueDate := task.CreatedAt.Add(time.Duration(1+g.rng.Intn(10)) * 24 * time.Hour)
		task.DueDate = &dueDate

		tasks = append(tasks, task)
	}
	return tasks, nil
}
