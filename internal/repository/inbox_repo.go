package repository

import (
	"context"
	"time"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

type InboxRepository struct {
	db *gorm.DB
}

func NewInboxRepository(db *gorm.DB) *InboxRepository {
	return &InboxRepository{db: db}
}

func (r *InboxRepository) DB() *gorm.DB { return r.db }

func (r *InboxRepository) Create(ctx context.Context, item *domain.InboxItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InboxRepository) GetByID(ctx context.Context, id int64) (*domain.InboxItem, error) {
	var item domain.InboxItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ResolvePending stamps the review decision onto an item, conditional on the
// item still being unread. Returns the number of rows changed: zero means
// another reviewer got there first (or the item was already resolved).
func (r *InboxRepository) ResolvePending(
	ctx context.Context,
	tx *gorm.DB,
	id int64,
	status domain.InboxStatus,
	reviewerID int64,
	reviewedAt time.Time,
	note *string,
) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).
		Model(&domain.InboxItem{}).
		Where("id = ? AND status = ?", id, domain.InboxUnread).
		Updates(map[string]any{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
			"review_note": note,
		})
	return res.RowsAffected, res.Error
}
