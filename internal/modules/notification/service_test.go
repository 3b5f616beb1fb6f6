package notification

import (
	"context"
	"fmt"
	"testing"

	"homeswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:notif_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))
	return NewService(NewRepository(db))
}

func TestSubmissionNotifications(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.NotifySubmissionApproved(ctx, 5, domain.InboxPropertyVerification, "12"))
	require.NoError(t, svc.NotifySubmissionDenied(ctx, 5, domain.InboxUserVerification, "3", "document expired"))

	list, err := svc.ListForUser(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)

	unread, err := svc.UnreadCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	var denied *Notification
	for i := range list {
		if list[i].Type == TypeSubmissionDenied {
			denied = &list[i]
		}
	}
	require.NotNil(t, denied)
	assert.Contains(t, denied.Title, "identity verification")
	assert.Contains(t, denied.Message, "document expired")
}

func TestMarkAsRead_ScopedToUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.NotifyExchangeAccepted(ctx, 5, 1, 10))

	list, err := svc.ListForUser(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	// Another user cannot mark it.
	require.NoError(t, svc.MarkAsRead(ctx, id, 6))
	unread, err := svc.UnreadCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, svc.MarkAsRead(ctx, id, 5))
	unread, err = svc.UnreadCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkAllAsRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.NotifyExchangeAccepted(ctx, 5, 1, 10))
	require.NoError(t, svc.NotifyExchangeDeclined(ctx, 5, 2, 11))

	require.NoError(t, svc.MarkAllAsRead(ctx, 5))

	unread, err := svc.UnreadCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
