package exchange

import (
	"context"
	"errors"
	"log"
	"time"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

type ExchangeRepository interface {
	Create(ctx context.Context, req *domain.ExchangeRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ExchangeRequest, error)
	Update(ctx context.Context, req *domain.ExchangeRequest) error
	ListByRequester(ctx context.Context, userID int64) ([]domain.ExchangeRequest, error)
	ListReceived(ctx context.Context, ownerID int64) ([]domain.ExchangeRequest, error)
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// NotificationSender tells the requester about the owner's response.
type NotificationSender interface {
	NotifyExchangeAccepted(ctx context.Context, requesterID, requestID, propertyID int64) error
	NotifyExchangeDeclined(ctx context.Context, requesterID, requestID, propertyID int64) error
}

type Service struct {
	requests   ExchangeRepository
	properties PropertyRepository
	notifs     NotificationSender
}

func NewService(requests ExchangeRepository, properties PropertyRepository, notifs NotificationSender) *Service {
	return &Service{requests: requests, properties: properties, notifs: notifs}
}

// Create files a stay request against an approved listing.
func (s *Service) Create(ctx context.Context, requesterID, propertyID int64, req CreateRequestRequest) (*domain.ExchangeRequest, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}
	if req.StartDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrValidation
	}

	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.VerificationStatus != domain.PropertyApproved {
		return nil, ErrNotBookable
	}
	if p.OwnerID == requesterID {
		return nil, ErrOwnProperty
	}
	if req.Guests > p.MaxGuests {
		return nil, ErrTooManyGuests
	}

	r := &domain.ExchangeRequest{
		PropertyID:  propertyID,
		RequesterID: requesterID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Guests:      req.Guests,
		Message:     req.Message,
		Status:      domain.ExchangePending,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListSent(ctx context.Context, userID int64) ([]domain.ExchangeRequest, error) {
	return s.requests.ListByRequester(ctx, userID)
}

func (s *Service) ListReceived(ctx context.Context, ownerID int64) ([]domain.ExchangeRequest, error) {
	return s.requests.ListReceived(ctx, ownerID)
}

// Respond lets the property owner accept or decline a pending request.
func (s *Service) Respond(ctx context.Context, ownerID, requestID int64, accept bool) (*domain.ExchangeRequest, error) {
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	p, err := s.properties.GetByID(ctx, r.PropertyID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotAllowed
	}
	if r.Status != domain.ExchangePending {
		return nil, ErrNotPending
	}

	now := time.Now()
	if accept {
		r.Status = domain.ExchangeAccepted
	} else {
		r.Status = domain.ExchangeDeclined
	}
	r.RespondedAt = &now
	if err := s.requests.Update(ctx, r); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		var nerr error
		if accept {
			nerr = s.notifs.NotifyExchangeAccepted(ctx, r.RequesterID, r.ID, r.PropertyID)
		} else {
			nerr = s.notifs.NotifyExchangeDeclined(ctx, r.RequesterID, r.ID, r.PropertyID)
		}
		if nerr != nil {
			log.Printf("exchange: notify requester failed request=%d err=%v", r.ID, nerr)
		}
	}

	return r, nil
}

// Cancel lets the requester withdraw a pending request.
func (s *Service) Cancel(ctx context.Context, requesterID, requestID int64) (*domain.ExchangeRequest, error) {
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if r.RequesterID != requesterID {
		return nil, ErrNotAllowed
	}
	if r.Status != domain.ExchangePending {
		return nil, ErrNotPending
	}

	now := time.Now()
	r.Status = domain.ExchangeCancelled
	r.RespondedAt = &now
	if err := s.requests.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
