package tasks

import (
	"context"
)

// newViewEvictionTask drops panel views that have been idle for longer than
// panel.view_ttl. A later request for an evicted view mounts a new one.
func newViewEvictionTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "view_eviction")
	ttl := deps.Config.Panel.ViewTTL

	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		evicted := deps.Registry.EvictIdle(ttl)
		log.InfoContext(ctx, "Evicted idle views", "evicted", evicted, "remaining", deps.Registry.Len(), "ttl", ttl)
		return nil
	}
}
