package repository

import (
	"context"
	"errors"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) DB() *gorm.DB { return r.db }

func (r *VerificationRepository) Create(ctx context.Context, v *domain.UserVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VerificationRepository) GetByID(ctx context.Context, id int64) (*domain.UserVerification, error) {
	var v domain.UserVerification
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// GetOpenByUserID returns the user's pending verification, or nil when the
// user has none in flight.
func (r *VerificationRepository) GetOpenByUserID(ctx context.Context, userID int64) (*domain.UserVerification, error) {
	var v domain.UserVerification
	err := r.db.WithContext(ctx).
		First(&v, "user_id = ? AND status = ?", userID, domain.VerificationPending).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.UserVerification, error) {
	var list []domain.UserVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *VerificationRepository) Update(ctx context.Context, v *domain.UserVerification) error {
	return r.db.WithContext(ctx).Save(v).Error
}
