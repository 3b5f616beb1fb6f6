package repository

import (
	"context"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

type ExchangeRepository struct {
	db *gorm.DB
}

func NewExchangeRepository(db *gorm.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

func (r *ExchangeRepository) DB() *gorm.DB { return r.db }

func (r *ExchangeRepository) Create(ctx context.Context, req *domain.ExchangeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ExchangeRepository) GetByID(ctx context.Context, id int64) (*domain.ExchangeRequest, error) {
	var req domain.ExchangeRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ExchangeRepository) Update(ctx context.Context, req *domain.ExchangeRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// ListByRequester returns stay requests the user has sent.
func (r *ExchangeRepository) ListByRequester(ctx context.Context, userID int64) ([]domain.ExchangeRequest, error) {
	var list []domain.ExchangeRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListReceived returns stay requests targeting properties the user owns.
func (r *ExchangeRepository) ListReceived(ctx context.Context, ownerID int64) ([]domain.ExchangeRequest, error) {
	var list []domain.ExchangeRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN properties p ON p.id = exchange_requests.property_id").
		Where("p.owner_id = ?", ownerID).
		Order("exchange_requests.created_at DESC").
		Find(&list).Error
	return list, err
}
