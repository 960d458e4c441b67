package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"teamboard/internal/core/domain"
)

//go:embed tasks.schema.json
var fixtureSchema []byte

type fixture struct {
	Tasks []fixtureTask `json:"tasks"`
}

type fixtureRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type fixtureTask struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	AssignedTo  fixtureRef  `json:"assigned_to"`
	Shop        *fixtureRef `json:"shop"`
	Channel     *fixtureRef `json:"channel"`
	DueDate     *time.Time  `json:"due_date"`
	CreatedAt   time.Time   `json:"created_at"`
	Progress    int         `json:"progress"`
}

// LoadFile reads a task fixture from disk.
func LoadFile(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the fixture schema and decodes it.
func Parse(data []byte) ([]domain.Task, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(fixtureSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to validate fixture: %w", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, domain.NewValidationError("fixture", strings.Join(messages, "; "))
	}

	var parsed fixture
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	tasks := make([]domain.Task, 0, len(parsed.Tasks))
	for _, item := range parsed.Tasks {
		tasks = append(tasks, domain.Task{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Type:        domain.TaskType(item.Type),
			Status:      domain.TaskStatus(item.Status),
			Priority:    domain.TaskPriority(item.Priority),
			AssignedTo:  domain.EntityRef{ID: item.AssignedTo.ID, Name: item.AssignedTo.Name},
			Shop:        toRef(item.Shop),
			Channel:     toRef(item.Channel),
			DueDate:     item.DueDate,
			CreatedAt:   item.CreatedAt,
			Progress:    item.Progress,
		})
	}
	return tasks, nil
}

func toRef(ref *fixtureRef) *domain.EntityRef {
	if ref == nil {
		return nil
	}
	return &domain.EntityRef{ID: ref.ID, Name: ref.Name}
}
