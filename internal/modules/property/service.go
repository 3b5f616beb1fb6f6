package property

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"homeswap/internal/domain"
	"homeswap/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	properties PropertyRepository
	users      UserRepository
	inbox      InboxWriter
}

func NewService(properties PropertyRepository, users UserRepository, inbox InboxWriter) *Service {
	return &Service{properties: properties, users: users, inbox: inbox}
}

// Submit creates a listing. Drafts are stored as-is with no validation and
// no moderation entry; everything else is validated, stored as pending and
// enqueued for admin review.
func (s *Service) Submit(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Country:     strings.TrimSpace(req.Country),
		City:        strings.TrimSpace(req.City),
		Address:     strings.TrimSpace(req.Address),
		MaxGuests:   req.MaxGuests,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Photos:      req.Photos,
		Amenities:   req.Amenities,
	}

	if req.IsDraft {
		p.VerificationStatus = domain.PropertyDraft
		if err := s.properties.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	// Validation happens before any write: a rejected submission leaves
	// no orphan row behind.
	if err := validateForSubmission(p); err != nil {
		return nil, err
	}

	p.VerificationStatus = domain.PropertyPending
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}

	s.enqueueForReview(ctx, p)
	return p, nil
}

// SubmitDraft promotes a draft (or a rejected listing after edits) to
// pending, running the same validation and producing the same inbox entry
// as a direct non-draft submission.
func (s *Service) SubmitDraft(ctx context.Context, ownerID, propertyID int64) (*domain.Property, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	if !p.IsEditable() {
		return nil, ErrAlreadySubmitted
	}

	if err := validateForSubmission(p); err != nil {
		return nil, err
	}

	p.VerificationStatus = domain.PropertyPending
	p.ReviewedBy = nil
	p.ReviewedAt = nil
	p.ReviewComment = ""
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}

	s.enqueueForReview(ctx, p)
	return p, nil
}

func (s *Service) ListPublic(ctx context.Context, f BrowseFilter) (*ListResponse, error) {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	props, total, err := s.properties.ListApproved(ctx, repository.PropertyFilters{
		Country:   f.Country,
		City:      f.City,
		MinGuests: f.Guests,
	}, page, limit)
	if err != nil {
		return nil, err
	}

	return &ListResponse{Properties: props, Total: total, Page: page, Limit: limit}, nil
}

// GetByID returns a listing. Listings that are not approved are visible
// only to their owner and to admins.
func (s *Service) GetByID(ctx context.Context, id, viewerID int64, viewerRole string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if p.VerificationStatus != domain.PropertyApproved &&
		p.OwnerID != viewerID &&
		viewerRole != string(domain.RoleAdmin) {
		return nil, ErrPropertyNotFound
	}

	return p, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return s.properties.GetByOwnerID(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, propertyID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	if !p.IsEditable() {
		return nil, ErrNotEditable
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Country != nil {
		p.Country = strings.TrimSpace(*req.Country)
	}
	if req.City != nil {
		p.City = strings.TrimSpace(*req.City)
	}
	if req.Address != nil {
		p.Address = strings.TrimSpace(*req.Address)
	}
	if req.MaxGuests != nil {
		p.MaxGuests = *req.MaxGuests
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, propertyID int64) error {
	if _, err := s.getOwned(ctx, ownerID, propertyID); err != nil {
		return err
	}
	return s.properties.SoftDelete(ctx, propertyID)
}

func (s *Service) getOwned(ctx context.Context, ownerID, propertyID int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// enqueueForReview writes the moderation entry after a successful property
// insert. A failure here leaves the pending row in place and is only
// logged: the listing is real, the queue entry can be recreated manually
// through the admin API.
func (s *Service) enqueueForReview(ctx context.Context, p *domain.Property) {
	if s.inbox == nil {
		return
	}

	var name, email string
	if owner, err := s.users.GetByID(ctx, p.OwnerID); err == nil {
		name, email = owner.Name, owner.Email
	}

	item := &domain.InboxItem{
		Type:           domain.InboxPropertyVerification,
		EventType:      domain.EventUpload,
		ReferenceID:    strconv.FormatInt(p.ID, 10),
		ReferenceTable: "properties",
		SenderID:       p.OwnerID,
		SenderName:     name,
		SenderEmail:    email,
	}
	if err := s.inbox.CreateItem(ctx, item); err != nil {
		log.Printf("property: inbox enqueue failed property_id=%d err=%v", p.ID, err)
	}
}

func validateForSubmission(p *domain.Property) error {
	switch {
	case p.Title == "":
		return &MissingFieldError{Field: "title"}
	case p.Description == "":
		return &MissingFieldError{Field: "description"}
	case p.Country == "":
		return &MissingFieldError{Field: "country"}
	case p.City == "":
		return &MissingFieldError{Field: "city"}
	case p.MaxGuests < 1:
		return &MissingFieldError{Field: "max_guests"}
	case len(p.Photos) == 0:
		return &MissingFieldError{Field: "photos"}
	}
	return nil
}
