package notification

import (
	"context"
	"fmt"

	"homeswap/internal/domain"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.GetByUserID(ctx, userID, limit)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func submissionLabel(itemType domain.InboxType) string {
	switch itemType {
	case domain.InboxUserVerification:
		return "identity verification"
	case domain.InboxPropertyVerification:
		return "property listing"
	case domain.InboxFeedback:
		return "feedback"
	default:
		return "submission"
	}
}

// NotifySubmissionApproved records an in-app notification for the sender
// of a reviewed submission.
func (s *Service) NotifySubmissionApproved(ctx context.Context, userID int64, itemType domain.InboxType, referenceID string) error {
	return s.repo.Create(ctx, &Notification{
		UserID:  userID,
		Type:    TypeSubmissionApproved,
		Title:   fmt.Sprintf("Your %s was approved", submissionLabel(itemType)),
		Message: fmt.Sprintf("Reference %s has been reviewed and approved.", referenceID),
	})
}

func (s *Service) NotifySubmissionDenied(ctx context.Context, userID int64, itemType domain.InboxType, referenceID, note string) error {
	msg := fmt.Sprintf("Reference %s has been reviewed and denied.", referenceID)
	if note != "" {
		msg = fmt.Sprintf("%s Reviewer note: %s", msg, note)
	}
	return s.repo.Create(ctx, &Notification{
		UserID:  userID,
		Type:    TypeSubmissionDenied,
		Title:   fmt.Sprintf("Your %s was denied", submissionLabel(itemType)),
		Message: msg,
	})
}

func (s *Service) NotifyExchangeAccepted(ctx context.Context, requesterID, requestID, propertyID int64) error {
	return s.repo.Create(ctx, &Notification{
		UserID:  requesterID,
		Type:    TypeExchangeAccepted,
		Title:   "Your stay request was accepted",
		Message: fmt.Sprintf("The owner of property %d accepted request %d.", propertyID, requestID),
	})
}

func (s *Service) NotifyExchangeDeclined(ctx context.Context, requesterID, requestID, propertyID int64) error {
	return s.repo.Create(ctx, &Notification{
		UserID:  requesterID,
		Type:    TypeExchangeDeclined,
		Title:   "Your stay request was declined",
		Message: fmt.Sprintf("The owner of property %d declined request %d.", propertyID, requestID),
	})
}
