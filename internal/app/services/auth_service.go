package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/Chippsss/sms-backend/internal/app/auth"
	"github.com/Chippsss/sms-backend/internal/app/models"
	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
	"github.com/Chippsss/sms-backend/internal/pkg/auth"
)

// userStore is the slice of UserRepository the auth service needs.
type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// tokenStore is the slice of TokenRepository the auth service needs.
type tokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetTokenByValue(ctx context.Context, token string) (userID int64, expiresAt time.Time, revoked bool, err error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// scopeResolver resolves a user id into its domain profile.
type scopeResolver interface {
	Resolve(ctx context.Context, userID int64) (*appauth.Scope, error)
}

// AuthService handles login, token refresh, logout and identity lookup.
type AuthService struct {
	userRepo   userStore
	tokenRepo  tokenStore
	resolver   scopeResolver
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo userStore,
	tokenRepo tokenStore,
	resolver scopeResolver,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		resolver:   resolver,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates credentials and issues a token pair. Credential
// failures and unknown emails collapse into the same error so callers
// cannot probe for registered addresses.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	tokenResp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record last login time")
	}

	return &dto.AuthResponse{
		Token: *tokenResp,
		User:  dto.FromUser(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// presented token is revoked so each refresh token is single use.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, expiresAt, revoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// LogoutAll revokes every refresh token of a user
func (s *AuthService) LogoutAll(ctx context.Context, userID int64) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

// WhoAmI returns the caller's identity together with whichever domain
// profile it resolved to. An account with no profile still gets an answer,
// with the role reported as UNLINKED.
func (s *AuthService) WhoAmI(ctx context.Context, userID int64) (*dto.WhoAmIResponse, error) {
	scope, err := s.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.WhoAmIResponse{
		Role:    string(scope.Kind),
		User:    dto.FromUser(scope.User),
		Student: scope.Student,
		Teacher: scope.Teacher,
	}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
