package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type stubUserRepo struct {
	user      *models.User
	findErr   error
	lastLogin time.Time
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByID(context.Context, string) (*models.User, error) {
	return s.user, s.findErr
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, _ string, at time.Time) error {
	s.lastLogin = at
	return nil
}

func hashedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "u1",
		Email:        "organizer@example.com",
		PasswordHash: string(hash),
		FullName:     "Organizer One",
		Role:         models.RoleOrganizer,
		Active:       true,
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := &stubUserRepo{user: hashedUser(t, "s3cret")}
	svc := NewAuthService(repo, "signing-secret", time.Hour, nil, zap.NewNop())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "organizer@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RoleOrganizer, resp.User.Role)
	assert.False(t, repo.lastLogin.IsZero())

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleOrganizer, claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := &stubUserRepo{user: hashedUser(t, "s3cret")}
	svc := NewAuthService(repo, "signing-secret", time.Hour, nil, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "organizer@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	repo := &stubUserRepo{findErr: sql.ErrNoRows}
	svc := NewAuthService(repo, "signing-secret", time.Hour, nil, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	user := hashedUser(t, "s3cret")
	user.Active = false
	svc := NewAuthService(&stubUserRepo{user: user}, "signing-secret", time.Hour, nil, zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "organizer@example.com",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	repo := &stubUserRepo{user: hashedUser(t, "s3cret")}
	issuer := NewAuthService(repo, "secret-a", time.Hour, nil, zap.NewNop())
	verifier := NewAuthService(repo, "secret-b", time.Hour, nil, zap.NewNop())

	resp, err := issuer.Login(context.Background(), models.LoginRequest{
		Email:    "organizer@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
