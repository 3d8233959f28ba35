package core

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/awsl-project/entrainde/internal/domain"
	"github.com/awsl-project/entrainde/internal/watcher"
)

// TaskCleaner drops tasks older than a Unix timestamp.
type TaskCleaner interface {
	RemoveBefore(since int64) (int, error)
}

// BackgroundTaskDeps 后台任务依赖
type BackgroundTaskDeps struct {
	Store   TaskCleaner
	Watcher *watcher.Watcher // nil when the backend is not a local file
	Now     func() time.Time
}

// CleanupOldTasks removes every task recorded before today (UTC).
func CleanupOldTasks(store TaskCleaner, now time.Time) (int, error) {
	return store.RemoveBefore(domain.StartOfDay(now.Unix()))
}

// StartBackgroundTasks 启动所有后台任务，ctx 取消后全部退出
func StartBackgroundTasks(ctx context.Context, deps BackgroundTaskDeps) *errgroup.Group {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	g, ctx := errgroup.WithContext(ctx)

	// 每日清理（UTC 零点）
	g.Go(func() error {
		deps.runDailyCleanup(ctx)
		return nil
	})

	if deps.Watcher != nil {
		g.Go(func() error {
			return deps.Watcher.Run(ctx)
		})
	}

	log.Println("[Task] Background tasks started (cleanup: daily at 00:00 UTC)")
	return g
}

func (d *BackgroundTaskDeps) runDailyCleanup(ctx context.Context) {
	for {
		wait := nextMidnight(d.Now()).Sub(d.Now())
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("[Task] Daily cleanup stopped")
			return
		case <-timer.C:
			d.cleanup()
		}
	}
}

func (d *BackgroundTaskDeps) cleanup() {
	removed, err := CleanupOldTasks(d.Store, d.Now())
	if err != nil {
		log.Printf("[Task] Failed to clean up old tasks: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[Task] Removed %d tasks from previous days", removed)
	}
}

// nextMidnight returns the first UTC midnight strictly after now.
func nextMidnight(now time.Time) time.Time {
	start := domain.StartOfDay(now.Unix())
	return time.Unix(start+24*60*60, 0).UTC()
}
