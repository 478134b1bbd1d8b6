package pendingcleanupworker

import (
	"context"
	baseworker "ets-backend/lib/utils/base-worker"
	pendingstore "ets-backend/lib/ws/pending-store"
	"time"

	"gorm.io/gorm"
)

const (
	firstRunDelay = time.Minute
	runInterval   = time.Hour
)

// StartWorker periodically removes queued websocket events older than ttl.
func StartWorker(ctx context.Context, DB *gorm.DB, ttl time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("pending-events-cleanup", firstRunDelay, runInterval),
		store:    pendingstore.NewInstance(DB),
		ttl:      ttl,
		now:      time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store pendingstore.Provider
	ttl   time.Duration
	now   func() time.Time
}

func (i impl) handle(ctx context.Context) {
	deleted, err := i.store.DeleteOlderThan(i.now().Add(-i.ttl))
	if err != nil {
		i.GetLogger().WithError(err).Error("failed to delete expired pending events")
		return
	}
	if deleted > 0 {
		i.GetLogger().WithField("deleted", deleted).Info("expired pending events deleted")
	}
}
