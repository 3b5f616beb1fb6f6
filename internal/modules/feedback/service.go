package feedback

import (
	"context"
	"log"
	"strconv"
	"strings"

	"homeswap/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type InboxWriter interface {
	CreateItem(ctx context.Context, item *domain.InboxItem) error
}

type Service struct {
	feedbacks FeedbackRepository
	users     UserRepository
	inbox     InboxWriter
}

func NewService(feedbacks FeedbackRepository, users UserRepository, inbox InboxWriter) *Service {
	return &Service{feedbacks: feedbacks, users: users, inbox: inbox}
}

// Submit stores a feedback message and enqueues it for the admin inbox.
// Name and email fall back to the sender's profile when left empty.
func (s *Service) Submit(ctx context.Context, userID int64, req SubmitRequest) (*domain.Feedback, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = user.Name
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = user.Email
	}

	f := &domain.Feedback{
		UserID:  &userID,
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.feedbacks.Create(ctx, f); err != nil {
		return nil, err
	}

	if s.inbox != nil {
		item := &domain.InboxItem{
			Type:           domain.InboxFeedback,
			EventType:      domain.EventFeedback,
			ReferenceID:    strconv.FormatInt(f.ID, 10),
			ReferenceTable: "feedbacks",
			SenderID:       user.ID,
			SenderName:     name,
			SenderEmail:    email,
		}
		if err := s.inbox.CreateItem(ctx, item); err != nil {
			log.Printf("feedback: inbox enqueue failed feedback_id=%d err=%v", f.ID, err)
		}
	}

	return f, nil
}
