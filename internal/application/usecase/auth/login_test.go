package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/devconnect/api/internal/domain/user"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/auth"
	"github.com/devconnect/api/pkg/logger"
)

type fakeUserRepo struct {
	users map[string]*userDomain.User
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userDomain.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func seededRepo(t *testing.T, email, password string) (*fakeUserRepo, uuid.UUID) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	id := uuid.New()
	return &fakeUserRepo{users: map[string]*userDomain.User{
		email: {ID: id, Name: "A", Email: email, PasswordHash: hash},
	}}, id
}

func TestLogin_Success(t *testing.T) {
	repo, userID := seededRepo(t, "a@x.com", "secret1")
	jwtSvc := auth.NewJWTService("test-secret", 10*time.Hour)
	uc := NewLoginUseCase(repo, jwtSvc, logger.NewZapLogger("development"))

	output, err := uc.Execute(context.Background(), LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(output.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, _ := seededRepo(t, "a@x.com", "secret1")
	uc := NewLoginUseCase(repo, auth.NewJWTService("test-secret", time.Hour), logger.NewZapLogger("development"))

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo, _ := seededRepo(t, "a@x.com", "secret1")
	uc := NewLoginUseCase(repo, auth.NewJWTService("test-secret", time.Hour), logger.NewZapLogger("development"))

	// unknown email and wrong password are indistinguishable to the caller
	_, err := uc.Execute(context.Background(), LoginInput{Email: "b@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestCurrentUser_NotFound(t *testing.T) {
	repo, _ := seededRepo(t, "a@x.com", "secret1")
	uc := NewCurrentUserUseCase(repo)

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
