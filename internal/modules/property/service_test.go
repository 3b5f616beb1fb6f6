package property

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"homeswap/internal/domain"
	"homeswap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

type fakeInbox struct {
	items []*domain.InboxItem
	err   error
}

func (f *fakeInbox) CreateItem(ctx context.Context, item *domain.InboxItem) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, item)
	return nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:prop_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Property{}))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeInbox, *domain.User) {
	t.Helper()
	db := testDB(t)

	owner := &domain.User{Email: "owner@example.com", Name: "Owner", Role: domain.RoleMember}
	require.NoError(t, db.Create(owner).Error)

	inbox := &fakeInbox{}
	svc := NewService(repository.NewPropertyRepository(db), repository.NewUserRepository(db), inbox)
	return svc, db, inbox, owner
}

func validRequest() CreatePropertyRequest {
	return CreatePropertyRequest{
		Title:       "Townhouse in Ghent",
		Description: "Three floors, small garden, ten minutes from the center.",
		Country:     "Belgium",
		City:        "Ghent",
		MaxGuests:   4,
		Photos:      []string{"/static/uploads/ghent-1.jpg"},
	}
}

func TestSubmit_DraftSkipsValidationAndQueue(t *testing.T) {
	svc, db, inbox, owner := newTestService(t)

	// A draft can be as empty as the owner likes.
	p, err := svc.Submit(context.Background(), owner.ID, CreatePropertyRequest{IsDraft: true})
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyDraft, p.VerificationStatus)
	assert.Empty(t, inbox.items)

	var count int64
	require.NoError(t, db.Model(&domain.Property{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmit_PendingEnqueuesOneItem(t *testing.T) {
	svc, _, inbox, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyPending, p.VerificationStatus)

	require.Len(t, inbox.items, 1)
	item := inbox.items[0]
	assert.Equal(t, domain.InboxPropertyVerification, item.Type)
	assert.Equal(t, domain.EventUpload, item.EventType)
	assert.Equal(t, fmt.Sprintf("%d", p.ID), item.ReferenceID)
	assert.Equal(t, owner.ID, item.SenderID)
	assert.Equal(t, owner.Email, item.SenderEmail)
}

func TestSubmit_MissingPhotosRejectedBeforeWrite(t *testing.T) {
	svc, db, inbox, owner := newTestService(t)

	req := validRequest()
	req.Photos = nil

	_, err := svc.Submit(context.Background(), owner.ID, req)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "photos", missing.Field)
	assert.Empty(t, inbox.items)

	// No orphan row.
	var count int64
	require.NoError(t, db.Model(&domain.Property{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmit_MissingTitle(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	req := validRequest()
	req.Title = "   "

	_, err := svc.Submit(context.Background(), owner.ID, req)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.Field)
}

func TestSubmitDraft_PromotesToPending(t *testing.T) {
	svc, _, inbox, owner := newTestService(t)

	draft, err := svc.Submit(context.Background(), owner.ID, func() CreatePropertyRequest {
		r := validRequest()
		r.IsDraft = true
		return r
	}())
	require.NoError(t, err)
	require.Empty(t, inbox.items)

	p, err := svc.SubmitDraft(context.Background(), owner.ID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyPending, p.VerificationStatus)
	assert.Len(t, inbox.items, 1)
}

func TestSubmitDraft_PendingIsFrozen(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)

	_, err = svc.SubmitDraft(context.Background(), owner.ID, p.ID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitDraft_RejectedCanResubmit(t *testing.T) {
	svc, db, inbox, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)

	reviewer := int64(1)
	require.NoError(t, db.Model(&domain.Property{}).Where("id = ?", p.ID).Updates(map[string]any{
		"verification_status": domain.PropertyRejected,
		"reviewed_by":         reviewer,
		"review_comment":      "blurry photos",
	}).Error)
	inbox.items = nil

	resubmitted, err := svc.SubmitDraft(context.Background(), owner.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyPending, resubmitted.VerificationStatus)
	assert.Nil(t, resubmitted.ReviewedBy)
	assert.Empty(t, resubmitted.ReviewComment)
	assert.Len(t, inbox.items, 1)
}

func TestUpdate_PendingIsFrozen(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)

	title := "New title"
	_, err = svc.Update(context.Background(), owner.ID, p.ID, UpdatePropertyRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdate_NotOwner(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, func() CreatePropertyRequest {
		r := validRequest()
		r.IsDraft = true
		return r
	}())
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), owner.ID+1, p.ID, UpdatePropertyRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGetByID_HidesUnapprovedFromStrangers(t *testing.T) {
	svc, _, _, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)

	// Owner sees it.
	_, err = svc.GetByID(context.Background(), p.ID, owner.ID, string(domain.RoleMember))
	assert.NoError(t, err)

	// Admin sees it.
	_, err = svc.GetByID(context.Background(), p.ID, 999, string(domain.RoleAdmin))
	assert.NoError(t, err)

	// Anyone else gets a 404, not a 403, to avoid leaking existence.
	_, err = svc.GetByID(context.Background(), p.ID, 999, string(domain.RoleMember))
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestListPublic_OnlyApproved(t *testing.T) {
	svc, db, _, owner := newTestService(t)

	pending, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)

	approved, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)
	require.NoError(t, db.Model(&domain.Property{}).Where("id = ?", approved.ID).
		Update("verification_status", domain.PropertyApproved).Error)

	resp, err := svc.ListPublic(context.Background(), BrowseFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, approved.ID, resp.Properties[0].ID)
	assert.NotEqual(t, pending.ID, resp.Properties[0].ID)
}

func TestDelete_SoftDeleteHidesListing(t *testing.T) {
	svc, db, _, owner := newTestService(t)

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)
	require.NoError(t, db.Model(&domain.Property{}).Where("id = ?", p.ID).
		Update("verification_status", domain.PropertyApproved).Error)

	require.NoError(t, svc.Delete(context.Background(), owner.ID, p.ID))

	resp, err := svc.ListPublic(context.Background(), BrowseFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)

	mine, err := svc.ListMine(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestSubmit_QueueFailureKeepsListing(t *testing.T) {
	svc, db, inbox, owner := newTestService(t)
	inbox.err = errors.New("queue down")

	p, err := svc.Submit(context.Background(), owner.ID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyPending, p.VerificationStatus)

	var count int64
	require.NoError(t, db.Model(&domain.Property{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
