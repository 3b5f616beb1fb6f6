package inbox

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"homeswap/internal/domain"

	"gorm.io/gorm"
)

// Reference tables an inbox item may point at.
const (
	TableProperties    = "properties"
	TableVerifications = "user_verifications"
	TableFeedbacks     = "feedbacks"
)

var sortFields = map[string]string{
	"created_at":  "created_at",
	"reviewed_at": "reviewed_at",
	"status":      "status",
	"type":        "type",
}

type Service struct {
	inbox  InboxRepository
	notifs NotificationSender
	hub    *Hub
}

func NewService(inbox InboxRepository, notifs NotificationSender, hub *Hub) *Service {
	return &Service{inbox: inbox, notifs: notifs, hub: hub}
}

// -------------------- Creation --------------------

// CreateItem inserts a queue entry for a submission. Producers call this
// right after writing the domain row; the admin API calls it for manual
// entries. The reference must resolve to an existing row at creation time.
func (s *Service) CreateItem(ctx context.Context, item *domain.InboxItem) error {
	switch item.Type {
	case domain.InboxUserVerification, domain.InboxPropertyVerification, domain.InboxFeedback:
	default:
		return ErrInvalidType
	}

	ok, err := s.referenceExists(ctx, item.ReferenceTable, item.ReferenceID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidReference
	}

	item.Status = domain.InboxUnread
	if err := s.inbox.Create(ctx, item); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(EventItemCreated, item)
	}
	return nil
}

func (s *Service) referenceExists(ctx context.Context, table, refID string) (bool, error) {
	id, err := strconv.ParseInt(refID, 10, 64)
	if err != nil {
		return false, nil
	}

	var count int64
	q := s.inbox.DB().WithContext(ctx)
	switch table {
	case TableProperties:
		err = q.Model(&domain.Property{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error
	case TableVerifications:
		err = q.Model(&domain.UserVerification{}).Where("id = ?", id).Count(&count).Error
	case TableFeedbacks:
		err = q.Model(&domain.Feedback{}).Where("id = ?", id).Count(&count).Error
	default:
		return false, nil
	}
	return count > 0, err
}

// -------------------- Queue reads --------------------

func (s *Service) List(ctx context.Context, f ListFilter) (*ListResponse, error) {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	q := s.inbox.DB().WithContext(ctx).Model(&domain.InboxItem{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy, ok := sortFields[f.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortDir, "asc") {
		dir = "ASC"
	}

	var items []domain.InboxItem
	if err := q.
		Order(sortBy + " " + dir).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page)*int64(pageSize) < total,
	}, nil
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	db := s.inbox.DB().WithContext(ctx).Model(&domain.InboxItem{})
	out := &StatsResponse{}

	type pair struct {
		count *int64
		where []any
	}
	counts := []pair{
		{&out.Unread, []any{"status = ?", domain.InboxUnread}},
		{&out.Approved, []any{"status = ?", domain.InboxApprove}},
		{&out.Denied, []any{"status = ?", domain.InboxDeny}},
		{&out.UserVerifications, []any{"type = ?", domain.InboxUserVerification}},
		{&out.PropertyVerifications, []any{"type = ?", domain.InboxPropertyVerification}},
		{&out.Feedbacks, []any{"type = ?", domain.InboxFeedback}},
	}
	for _, p := range counts {
		if err := db.Session(&gorm.Session{}).Where(p.where[0], p.where[1:]...).Count(p.count).Error; err != nil {
			return nil, err
		}
	}

	// Items resolved today, server local time.
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	if err := db.Session(&gorm.Session{}).
		Where("reviewed_at >= ? AND reviewed_at < ?", start, end).
		Count(&out.TodayActions).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// GetDetail returns the item plus its referenced domain row, resolved by a
// switch on reference_table. A missing row is reported, not treated as an
// error: domain rows can be deleted independently of the queue.
func (s *Service) GetDetail(ctx context.Context, id int64) (*ItemDetail, error) {
	item, err := s.inbox.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	detail := &ItemDetail{Item: *item}

	refID, perr := strconv.ParseInt(item.ReferenceID, 10, 64)
	if perr != nil {
		detail.ReferenceMissing = true
		return detail, nil
	}

	q := s.inbox.DB().WithContext(ctx)
	switch item.ReferenceTable {
	case TableProperties:
		var p domain.Property
		err = q.First(&p, "id = ?", refID).Error
		detail.Detail = &p
	case TableVerifications:
		var v domain.UserVerification
		err = q.First(&v, "id = ?", refID).Error
		detail.Detail = &v
	case TableFeedbacks:
		var f domain.Feedback
		err = q.First(&f, "id = ?", refID).Error
		detail.Detail = &f
	default:
		detail.Detail = nil
		detail.ReferenceMissing = true
		return detail, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		detail.Detail = nil
		detail.ReferenceMissing = true
		return detail, nil
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// -------------------- Review engine --------------------

// Review resolves one item: stamps the decision onto the queue entry and
// mirrors it onto the referenced domain record. Both writes run in a single
// transaction, so a failed mirror rolls the resolution back and the caller
// can retry. Re-reviewing a resolved item fails with ErrAlreadyReviewed; the
// conditional primary update makes that hold under concurrent reviewers too.
func (s *Service) Review(ctx context.Context, id, reviewerID int64, action, note string) (*domain.InboxItem, error) {
	status, err := mapAction(action)
	if err != nil {
		return nil, err
	}

	item, err := s.inbox.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.IsResolved() {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	var notePtr *string
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		notePtr = &trimmed
	}

	err = s.inbox.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.inbox.ResolvePending(ctx, tx, id, status, reviewerID, now, notePtr)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyReviewed
		}
		return s.mirrorDecision(ctx, tx, item, status, reviewerID, now, note)
	})
	if err != nil {
		return nil, err
	}

	item.Status = status
	item.ReviewedBy = &reviewerID
	item.ReviewedAt = &now
	item.ReviewNote = notePtr

	if s.hub != nil {
		s.hub.Broadcast(EventItemReviewed, item)
	}
	s.notifySender(ctx, item, status, note)

	return item, nil
}

// BulkReview applies one decision to a set of items. Items are resolved
// independently: a conflict or missing id does not stop the rest.
func (s *Service) BulkReview(ctx context.Context, ids []int64, reviewerID int64, action, note string) ([]BulkResult, error) {
	if _, err := mapAction(action); err != nil {
		return nil, err
	}

	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		_, err := s.Review(ctx, id, reviewerID, action, note)
		switch {
		case err == nil:
			results = append(results, BulkResult{ID: id, Status: "resolved"})
		case errors.Is(err, ErrAlreadyReviewed):
			results = append(results, BulkResult{ID: id, Status: "conflict", Error: err.Error()})
		case errors.Is(err, ErrItemNotFound):
			results = append(results, BulkResult{ID: id, Status: "not_found", Error: err.Error()})
		default:
			results = append(results, BulkResult{ID: id, Status: "error", Error: err.Error()})
		}
	}
	return results, nil
}

// mirrorDecision applies the decision to the authoritative record. Feedback
// has no status of its own. A reference row that disappeared since creation
// is logged and skipped; the item still resolves.
func (s *Service) mirrorDecision(
	ctx context.Context,
	tx *gorm.DB,
	item *domain.InboxItem,
	status domain.InboxStatus,
	reviewerID int64,
	now time.Time,
	note string,
) error {
	if item.Type == domain.InboxFeedback {
		return nil
	}

	refID, err := strconv.ParseInt(item.ReferenceID, 10, 64)
	if err != nil {
		log.Printf("inbox: item=%d has non-numeric reference_id=%q, mirror skipped", item.ID, item.ReferenceID)
		return nil
	}

	approved := status == domain.InboxApprove

	switch item.Type {
	case domain.InboxPropertyVerification:
		propStatus := domain.PropertyRejected
		if approved {
			propStatus = domain.PropertyApproved
		}
		res := tx.WithContext(ctx).
			Model(&domain.Property{}).
			Where("id = ?", refID).
			Updates(map[string]any{
				"verification_status": propStatus,
				"reviewed_by":         reviewerID,
				"reviewed_at":         now,
				"review_comment":      note,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("inbox: item=%d references missing property id=%d, mirror skipped", item.ID, refID)
		}

	case domain.InboxUserVerification:
		verStatus := domain.VerificationRejected
		if approved {
			verStatus = domain.VerificationVerified
		}
		res := tx.WithContext(ctx).
			Model(&domain.UserVerification{}).
			Where("id = ?", refID).
			Updates(map[string]any{
				"status":      verStatus,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
				"notes":       note,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("inbox: item=%d references missing verification id=%d, mirror skipped", item.ID, refID)
			return nil
		}

		identity := domain.IdentityRejected
		if approved {
			identity = domain.IdentityVerified
		}
		return tx.WithContext(ctx).
			Model(&domain.User{}).
			Where("id = ?", item.SenderID).
			Update("identity_status", identity).Error
	}

	return nil
}

func (s *Service) notifySender(ctx context.Context, item *domain.InboxItem, status domain.InboxStatus, note string) {
	if s.notifs == nil || item.SenderID == 0 {
		return
	}
	var err error
	if status == domain.InboxApprove {
		err = s.notifs.NotifySubmissionApproved(ctx, item.SenderID, item.Type, item.ReferenceID)
	} else {
		err = s.notifs.NotifySubmissionDenied(ctx, item.SenderID, item.Type, item.ReferenceID, note)
	}
	if err != nil {
		log.Printf("inbox: notify sender failed item=%d user=%d err=%v", item.ID, item.SenderID, err)
	}
}

func mapAction(action string) (domain.InboxStatus, error) {
	switch action {
	case "approve":
		return domain.InboxApprove, nil
	case "deny":
		return domain.InboxDeny, nil
	default:
		return "", ErrInvalidAction
	}
}
