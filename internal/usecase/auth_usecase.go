package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/domain/repository"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/token"
	"github.com/horecaseek-service/internal/pkg/validator"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// AuthUseCase - signup with email confirmation, login, refresh rotation.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
	jwtSecret   string
	accessTTL   time.Duration
	refreshTTL  time.Duration
	confirmTTL  time.Duration
}

// NewAuthUseCase - creates a new AuthUseCase
func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
	jwtSecret string,
	accessTTL, refreshTTL, confirmTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		jwtSecret:   jwtSecret,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		confirmTTL:  confirmTTL,
	}
}

// SignUp creates an unconfirmed account and issues a one-time confirmation
// code. Only the code's hash is stored; the raw code is delivered to the
// user out of band and never appears in the API response.
func (uc *AuthUseCase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	code, err := token.NewConfirmCode()
	if err != nil {
		uc.logger.Error("Failed to generate confirmation code", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if err := uc.sessionRepo.SaveConfirmCode(ctx, token.HashRaw(code), user.ID, uc.confirmTTL); err != nil {
		uc.logger.Error("Failed to store confirmation code", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("User signed up, confirmation pending",
		zap.String("user_id", user.ID))

	return &dto.SignUpResponse{
		UserID:               user.ID,
		ConfirmationRequired: true,
	}, nil
}

// Confirm consumes a confirmation-code hash and marks the account's email
// confirmed. Codes are single-use: a second attempt with the same hash is
// ErrInvalidToken.
func (uc *AuthUseCase) Confirm(ctx context.Context, req *dto.ConfirmRequest) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	userID, err := uc.sessionRepo.ConsumeConfirmCode(ctx, req.TokenHash)
	if err != nil {
		uc.logger.Error("Failed to consume confirmation code", zap.Error(err))
		return errors.ErrInternalServer
	}
	if userID == "" {
		return errors.ErrInvalidToken
	}

	if err := uc.userRepo.ConfirmEmail(ctx, userID); err != nil {
		return err
	}

	uc.logger.Info("Email confirmed", zap.String("user_id", userID))
	return nil
}

// Login verifies credentials and issues an access/refresh pair. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, errors.ErrAuthRequired.WithMessage("Email not confirmed")
	}

	return uc.issueSession(ctx, user.ID)
}

// Refresh rotates a refresh token: the presented token is invalidated and a
// fresh pair is issued. An unknown or expired token is ErrInvalidToken.
func (uc *AuthUseCase) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.SessionResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	hash := token.HashRaw(req.RefreshToken)
	userID, err := uc.sessionRepo.ResolveRefresh(ctx, hash)
	if err != nil {
		uc.logger.Error("Failed to resolve refresh token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if userID == "" {
		return nil, errors.ErrInvalidToken
	}

	if err := uc.sessionRepo.DeleteRefresh(ctx, hash); err != nil {
		uc.logger.Warn("Failed to delete rotated refresh token", zap.Error(err))
	}

	return uc.issueSession(ctx, userID)
}

// Logout invalidates a refresh session. Logging out with an unknown token
// is a no-op, not an error.
func (uc *AuthUseCase) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.RefreshToken == "" {
		return nil
	}
	if err := uc.sessionRepo.DeleteRefresh(ctx, token.HashRaw(req.RefreshToken)); err != nil {
		uc.logger.Warn("Failed to delete refresh token on logout", zap.Error(err))
	}
	return nil
}

// Authenticate resolves a bearer access token to a user id.
func (uc *AuthUseCase) Authenticate(raw string) (string, error) {
	userID, err := token.ParseAccessToken(uc.jwtSecret, raw)
	if err != nil {
		return "", errors.ErrInvalidToken
	}
	return userID, nil
}

func (uc *AuthUseCase) issueSession(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	access, err := token.NewAccessToken(uc.jwtSecret, userID, uc.accessTTL)
	if err != nil {
		uc.logger.Error("Failed to sign access token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	refresh, err := token.NewRefreshToken(uc.refreshTTL)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if err := uc.sessionRepo.SaveRefresh(ctx, token.HashRaw(refresh.Raw), userID, uc.refreshTTL); err != nil {
		uc.logger.Error("Failed to store refresh session", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.SessionResponse{
		AccessToken:      access.Token,
		AccessExpiresAt:  access.Exp.Unix(),
		RefreshToken:     refresh.Raw,
		RefreshExpiresAt: refresh.Exp.Unix(),
	}, nil
}
