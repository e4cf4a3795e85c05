package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/Chippsss/sms-backend/internal/app/auth"
	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/auth"
)

type fakeUserStore struct {
	byEmail   map[string]*models.User
	byID      map[int64]*models.User
	lastLogin map[int64]time.Time
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	if f.lastLogin == nil {
		f.lastLogin = map[int64]time.Time{}
	}
	f.lastLogin[userID] = at
	return nil
}

type storedToken struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type fakeTokenStore struct {
	tokens map[string]*storedToken
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiresAt time.Time) error {
	f.tokens[token] = &storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	t, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return t.userID, t.expiresAt, t.revoked, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.revoked = true
	return nil
}

func (f *fakeTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, t := range f.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

type fakeScopeResolver struct {
	scopes map[int64]*appauth.Scope
}

func (f *fakeScopeResolver) Resolve(_ context.Context, userID int64) (*appauth.Scope, error) {
	s, ok := f.scopes[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return s, nil
}

func newAuthServiceFixture(t *testing.T) (*AuthService, *fakeUserStore, *fakeTokenStore, *fakeScopeResolver) {
	t.Helper()

	hashed, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	active := &models.User{
		ID:        1,
		Email:     "teacher@school.edu",
		Password:  hashed,
		FirstName: "Meera",
		LastName:  "Iyer",
		RoleType:  models.RoleTeacher,
		IsActive:  true,
	}
	disabled := &models.User{
		ID:       2,
		Email:    "disabled@school.edu",
		Password: hashed,
		RoleType: models.RoleStudent,
		IsActive: false,
	}

	users := &fakeUserStore{
		byEmail: map[string]*models.User{active.Email: active, disabled.Email: disabled},
		byID:    map[int64]*models.User{1: active, 2: disabled},
	}
	tokens := &fakeTokenStore{tokens: map[string]*storedToken{}}
	resolver := &fakeScopeResolver{scopes: map[int64]*appauth.Scope{
		1: {Kind: appauth.ScopeTeacher, User: active, Teacher: &models.Teacher{ID: 7, UserID: 1, EmployeeID: "EMP-007"}},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "sms-backend-test",
	})

	return NewAuthService(users, tokens, resolver, jwtService, zerolog.Nop()), users, tokens, resolver
}

func TestAuthService_Login(t *testing.T) {
	svc, users, tokens, _ := newAuthServiceFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "TEACHER", resp.User.Role)
	assert.Contains(t, tokens.tokens, resp.Token.RefreshToken)
	assert.Contains(t, users.lastLogin, int64(1))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthServiceFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthServiceFixture(t)

	// Unknown emails produce the same error as bad passwords
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.edu",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, _, _, _ := newAuthServiceFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "disabled@school.edu",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	svc, _, tokens, _ := newAuthServiceFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.edu",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	oldToken := login.Token.RefreshToken

	refreshed, err := svc.RefreshToken(context.Background(), oldToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, refreshed.RefreshToken)
	assert.True(t, tokens.tokens[oldToken].revoked)

	// The old token is single use
	_, err = svc.RefreshToken(context.Background(), oldToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	svc, _, tokens, _ := newAuthServiceFixture(t)
	tokens.tokens["stale"] = &storedToken{userID: 1, expiresAt: time.Now().Add(-time.Hour)}

	_, err := svc.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthService_RefreshToken_Unknown(t *testing.T) {
	svc, _, _, _ := newAuthServiceFixture(t)

	_, err := svc.RefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokens, _ := newAuthServiceFixture(t)
	tokens.tokens["live"] = &storedToken{userID: 1, expiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, svc.Logout(context.Background(), "live"))
	assert.True(t, tokens.tokens["live"].revoked)
}

func TestAuthService_WhoAmI(t *testing.T) {
	svc, _, _, resolver := newAuthServiceFixture(t)

	resp, err := svc.WhoAmI(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "TEACHER", resp.Role)
	require.NotNil(t, resp.Teacher)
	assert.Equal(t, "EMP-007", resp.Teacher.EmployeeID)
	assert.Nil(t, resp.Student)

	// Accounts with no profile row still resolve, reported as UNLINKED
	resolver.scopes[2] = &appauth.Scope{Kind: appauth.ScopeUnlinked, User: &models.User{ID: 2, Email: "disabled@school.edu"}}
	resp, err = svc.WhoAmI(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "UNLINKED", resp.Role)
	assert.Nil(t, resp.Teacher)
	assert.Nil(t, resp.Student)
}
