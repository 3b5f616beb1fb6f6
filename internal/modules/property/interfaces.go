package property

import (
	"context"

	"homeswap/internal/domain"
	"homeswap/internal/repository"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error)
	ListApproved(ctx context.Context, f repository.PropertyFilters, page, limit int) ([]domain.Property, int64, error)
	SoftDelete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// InboxWriter enqueues a moderation item for a submitted listing.
type InboxWriter interface {
	CreateItem(ctx context.Context, item *domain.InboxItem) error
}
