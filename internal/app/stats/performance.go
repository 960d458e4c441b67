package stats

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"teamboard/internal/core/domain"
)

const hoursPerOpenTask = 2.5

// QualityScorer rates a user's work on a 0-5 scale.
type QualityScorer interface {
	Score(user domain.User, tasks []domain.Task) float64
	Simulated() bool
}

// SimulatedQualityScorer is a placeholder until review data exists: it returns
// a random score in [3.0, 5.0] with one decimal and ignores its inputs.
type SimulatedQualityScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedQualityScorer(rng *rand.Rand) *SimulatedQualityScorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedQualityScorer{rng: rng}
}

func (s *SimulatedQualityScorer) Score(domain.User, []domain.Task) float64 {
	s.mu.Lock()
	value := s.rng.Float64()*2 + 3
	s.mu.Unlock()
	return math.Round(value*10) / 10
}

func (s *SimulatedQualityScorer) Simulated() bool {
	return true
}

// Performance builds one record per user, in the order of users.
func Performance(tasks []domain.Task, users []domain.User, scorer QualityScorer) []domain.UserPerformance {
	out := make([]domain.UserPerformance, 0, len(users))
	for _, user := range users {
		userTasks := ByUser(tasks, user.ID)
		counts := countStatuses(userTasks)

		record := domain.UserPerformance{
			UserID:          user.ID,
			UserName:        user.Name,
			TasksCompleted:  counts.completed,
			TasksInProgress: counts.inProgress,
			TasksPending:    counts.pending,
			TotalTasks:      counts.total(),
			CompletionRate:  Percent(counts.completed, counts.total()),
		}
		if scorer != nil {
			record.QualityScore = scorer.Score(user, userTasks)
			record.QualitySimulated = scorer.Simulated()
		}
		out = append(out, record)
	}
	return out
}

// Workload summarises a set of tasks the way the media dashboard shows it.
func Workload(tasks []domain.Task, now time.Time) domain.WorkloadSummary {
	counts := countStatuses(tasks)
	start, end := DayBounds(now)

	todayCompleted := 0
	progressSum := 0
	for _, task := range tasks {
		progressSum += task.Progress
		if task.Status == domain.TaskStatusCompleted && createdWithin(task, start, end) {
			todayCompleted++
		}
	}

	overall := 0
	if len(tasks) > 0 {
		overall = roundHalfUp(float64(progressSum) / float64(len(tasks)))
	}

	return domain.WorkloadSummary{
		Completed:               counts.completed,
		Pending:                 counts.pending,
		InProgress:              counts.inProgress,
		Total:                   counts.total(),
		CompletionRate:          Percent(counts.completed, counts.total()),
		TodayCompleted:          todayCompleted,
		OverallProgress:         overall,
		EstimatedHoursRemaining: roundHalfUp(float64(counts.pending+counts.inProgress) * hoursPerOpenTask),
	}
}

// Percent returns round(100*part/total), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(100 * float64(part) / float64(total))
}

// VideoCode labels the index-th media task of a list, e.g. VID170126-Gaming-3.
func VideoCode(task domain.Task, index int, now time.Time) string {
	channelName := "Unknown Channel"
	if task.Channel != nil && task.Channel.Name != "" {
		channelName = task.Channel.Name
	}
	return fmt.Sprintf("VID%s-%s-%d", now.Format("020106"), channelName, index+1)
}

func IsOverdue(task domain.Task, now time.Time) bool {
	return task.DueDate != nil && task.DueDate.Before(now)
}

type statusCounts struct {
	pending    int
	inProgress int
	completed  int
}

func (c statusCounts) total() int {
	return c.pending + c.inProgress + c.completed
}

func countStatuses(tasks []domain.Task) statusCounts {
	var counts statusCounts
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusPending:
			counts.pending++
		case domain.TaskStatusInProgress:
			counts.inProgress++
		case domain.TaskStatusCompleted:
			counts.completed++
		}
	}
	return counts
}

// roundHalfUp matches Math.round for the non-negative values used here.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}
