package inbox

import (
	"context"
	"time"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

type InboxRepository interface {
	Create(ctx context.Context, item *domain.InboxItem) error
	GetByID(ctx context.Context, id int64) (*domain.InboxItem, error)
	ResolvePending(
		ctx context.Context,
		tx *gorm.DB,
		id int64,
		status domain.InboxStatus,
		reviewerID int64,
		reviewedAt time.Time,
		note *string,
	) (int64, error)
	DB() *gorm.DB
}

type NotificationSender interface {
	NotifySubmissionApproved(ctx context.Context, userID int64, itemType domain.InboxType, referenceID string) error
	NotifySubmissionDenied(ctx context.Context, userID int64, itemType domain.InboxType, referenceID, note string) error
}
