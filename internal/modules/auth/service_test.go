package auth

import (
	"context"
	"testing"

	"homeswap/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct {
	token string
	err   error
}

func (s *stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return s.token, s.err
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(repo, &stubJWT{token: "t"})

	user, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "  New Member ",
		Email:    " New@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "New Member", user.Name)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, domain.IdentityNone, user.IdentityStatus)
	assert.Empty(t, user.PasswordHash, "hash must not leak out")

	// The stored hash verifies against the plaintext password.
	created := repo.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecret")))

	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	svc := NewService(repo, &stubJWT{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "m@example.com").Return(&domain.User{
		ID:           5,
		Email:        "m@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}, nil)

	svc := NewService(repo, &stubJWT{token: "signed-token"})

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "M@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "signed-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "m@example.com").Return(&domain.User{
		ID:           5,
		Email:        "m@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(repo, &stubJWT{})

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "m@example.com",
		Password: "nope",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, &stubJWT{})

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe_UnknownUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, &stubJWT{})

	_, err := svc.Me(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
