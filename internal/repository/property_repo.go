package repository

import (
	"context"
	"strings"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

// PropertyFilters narrows the public browse query. Zero values mean "any".
type PropertyFilters struct {
	Country   string
	City      string
	MinGuests int
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) DB() *gorm.DB { return r.db }

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).
		First(&p, "id = ? AND deleted_at IS NULL", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	var props []domain.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Order("created_at DESC").
		Find(&props).Error
	return props, err
}

// ListApproved returns the public catalog page: approved listings only.
func (r *PropertyRepository) ListApproved(ctx context.Context, f PropertyFilters, page, limit int) ([]domain.Property, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("verification_status = ? AND deleted_at IS NULL", domain.PropertyApproved)

	if c := strings.TrimSpace(f.Country); c != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(c))
	}
	if c := strings.TrimSpace(f.City); c != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(c))
	}
	if f.MinGuests > 0 {
		q = q.Where("max_guests >= ?", f.MinGuests)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var props []domain.Property
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&props).Error; err != nil {
		return nil, 0, err
	}

	return props, total, nil
}

func (r *PropertyRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
