package seed

import (
	"time"

	"go.uber.org/zap"

	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
)

// Source produces the task set to install.
type Source func() ([]domain.Task, error)

// Schedule replaces the store contents with source's tasks once delay has
// elapsed. The returned func cancels a pending load; it reports false when the
// load already ran or was already cancelled.
func Schedule(store ports.TaskStore, delay time.Duration, source Source) func() bool {
	timer := time.AfterFunc(delay, func() {
		tasks, err := source()
		if err != nil {
			zap.L().Error("failed to build demo tasks", zap.Error(err))
			return
		}
		if err := store.ReplaceAll(tasks); err != nil {
			zap.L().Error("failed to install demo tasks", zap.Error(err))
			return
		}
		zap.L().Info("demo tasks loaded", zap.Int("count", len(tasks)))
	})
	return timer.Stop
}
