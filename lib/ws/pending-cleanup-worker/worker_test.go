package pendingcleanupworker

import (
	"context"
	"ets-backend/db/dbtest"
	baseworker "ets-backend/lib/utils/base-worker"
	pendingstore "ets-backend/lib/ws/pending-store"
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	tx := dbtest.New(t)
	store := pendingstore.NewInstance(tx)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	old := dbmodels.PendingEvent{UserID: "3", Code: models.ChatMessageEvent, Msg: "old"}
	old.CreatedAt = now.Add(-8 * 24 * time.Hour)
	fresh := dbmodels.PendingEvent{UserID: "3", Code: models.ChatMessageEvent, Msg: "fresh"}
	fresh.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, store.Create(old))
	require.NoError(t, store.Create(fresh))

	worker := impl{
		BaseImpl: *baseworker.NewInstance("test", 0, 0),
		store:    store,
		ttl:      7 * 24 * time.Hour,
		now:      func() time.Time { return now },
	}
	worker.handle(context.Background())

	list, err := store.List("3")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "fresh", list[0].Msg)
}
