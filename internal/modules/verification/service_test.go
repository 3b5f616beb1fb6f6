package verification

import (
	"context"
	"testing"

	"homeswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVerificationRepo struct {
	open    *domain.UserVerification
	created []*domain.UserVerification
	nextID  int64
}

func (m *mockVerificationRepo) Create(ctx context.Context, v *domain.UserVerification) error {
	m.nextID++
	v.ID = m.nextID
	m.created = append(m.created, v)
	return nil
}

func (m *mockVerificationRepo) GetOpenByUserID(ctx context.Context, userID int64) (*domain.UserVerification, error) {
	return m.open, nil
}

func (m *mockVerificationRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.UserVerification, error) {
	return nil, nil
}

type mockUserRepo struct {
	user     *domain.User
	statuses []domain.IdentityStatus
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.user, nil
}

func (m *mockUserRepo) UpdateIdentityStatus(ctx context.Context, userID int64, status domain.IdentityStatus) error {
	m.statuses = append(m.statuses, status)
	return nil
}

type fakeInbox struct {
	items []*domain.InboxItem
}

func (f *fakeInbox) CreateItem(ctx context.Context, item *domain.InboxItem) error {
	f.items = append(f.items, item)
	return nil
}

func TestSubmit_CreatesPendingAndEnqueues(t *testing.T) {
	user := &domain.User{ID: 7, Name: "Member", Email: "member@example.com"}
	repo := &mockVerificationRepo{}
	users := &mockUserRepo{user: user}
	inbox := &fakeInbox{}

	svc := NewService(repo, users, inbox)

	v, err := svc.Submit(context.Background(), user.ID, SubmitRequest{
		DocumentType: "passport",
		DocumentURL:  "https://cdn.example.com/doc.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VerificationPending, v.Status)
	assert.Equal(t, []domain.IdentityStatus{domain.IdentityPending}, users.statuses)

	require.Len(t, inbox.items, 1)
	item := inbox.items[0]
	assert.Equal(t, domain.InboxUserVerification, item.Type)
	assert.Equal(t, domain.EventVerify, item.EventType)
	assert.Equal(t, "1", item.ReferenceID)
	assert.Equal(t, "user_verifications", item.ReferenceTable)
	assert.Equal(t, user.Email, item.SenderEmail)
}

func TestSubmit_SecondOpenSubmissionRejected(t *testing.T) {
	user := &domain.User{ID: 7}
	repo := &mockVerificationRepo{
		open: &domain.UserVerification{ID: 1, UserID: 7, Status: domain.VerificationPending},
	}
	svc := NewService(repo, &mockUserRepo{user: user}, &fakeInbox{})

	_, err := svc.Submit(context.Background(), user.ID, SubmitRequest{
		DocumentType: "passport",
		DocumentURL:  "https://cdn.example.com/doc.pdf",
	})
	assert.ErrorIs(t, err, ErrAlreadyPending)
	assert.Empty(t, repo.created)
}
