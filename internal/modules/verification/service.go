package verification

import (
	"context"
	"log"
	"strconv"

	"homeswap/internal/domain"
)

type VerificationRepository interface {
	Create(ctx context.Context, v *domain.UserVerification) error
	GetOpenByUserID(ctx context.Context, userID int64) (*domain.UserVerification, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.UserVerification, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateIdentityStatus(ctx context.Context, userID int64, status domain.IdentityStatus) error
}

type InboxWriter interface {
	CreateItem(ctx context.Context, item *domain.InboxItem) error
}

type Service struct {
	verifications VerificationRepository
	users         UserRepository
	inbox         InboxWriter
}

func NewService(verifications VerificationRepository, users UserRepository, inbox InboxWriter) *Service {
	return &Service{verifications: verifications, users: users, inbox: inbox}
}

// Submit records an identity document for review. One open verification per
// user: a second submission while the first is pending is rejected.
func (s *Service) Submit(ctx context.Context, userID int64, req SubmitRequest) (*domain.UserVerification, error) {
	open, err := s.verifications.GetOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrAlreadyPending
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	v := &domain.UserVerification{
		UserID:       userID,
		DocumentType: req.DocumentType,
		DocumentURL:  req.DocumentURL,
		Status:       domain.VerificationPending,
	}
	if err := s.verifications.Create(ctx, v); err != nil {
		return nil, err
	}

	if err := s.users.UpdateIdentityStatus(ctx, userID, domain.IdentityPending); err != nil {
		log.Printf("verification: identity status update failed user=%d err=%v", userID, err)
	}

	if s.inbox != nil {
		item := &domain.InboxItem{
			Type:           domain.InboxUserVerification,
			EventType:      domain.EventVerify,
			ReferenceID:    strconv.FormatInt(v.ID, 10),
			ReferenceTable: "user_verifications",
			SenderID:       user.ID,
			SenderName:     user.Name,
			SenderEmail:    user.Email,
		}
		if err := s.inbox.CreateItem(ctx, item); err != nil {
			log.Printf("verification: inbox enqueue failed verification_id=%d err=%v", v.ID, err)
		}
	}

	return v, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.UserVerification, error) {
	return s.verifications.ListByUserID(ctx, userID)
}
