package tasks

import (
	"context"

	"github.com/edgard/imagebot/internal/config"
)

// ScheduledTaskFunc is the signature of every scheduled task. The context
// should be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns the scheduled tasks keyed by the name used in the
// scheduler.tasks configuration.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		config.DefaultViewEvictionTask: newViewEvictionTask(deps),
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
