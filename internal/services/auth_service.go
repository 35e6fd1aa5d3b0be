package services

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/auth"
	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	AttachProfile(userID string, req *dto.AttachProfileRequest) (*dto.CreatorDTO, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	Session(userID string) (*dto.SessionResponse, error)
}

// txRunner is the slice of *gorm.DB the register flow needs, so the
// two-step create can run without a live database in tests.
type txRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type AuthServiceImpl struct {
	db            txRunner
	userRepo      repositories.UserRepository
	creatorRepo   repositories.CreatorRepository
	emailProvider email.Provider
}

func NewAuthService(
	db txRunner,
	userRepo repositories.UserRepository,
	creatorRepo repositories.CreatorRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		creatorRepo:   creatorRepo,
		emailProvider: emailProvider,
	}
}

// Register creates the account and the creator profile in one
// transaction. A failure on either side leaves nothing behind, so the
// email stays free to retry.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleCreator,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.CreateTx(tx, user); err != nil {
			return err
		}

		creator := &models.Creator{
			LinkedUserID: &user.ID,
			FullName:     req.FullName,
			Email:        req.Email,
			City:         req.City,
			Skills:       req.Skills,
			Bio:          req.Bio,
			WhatsApp:     req.WhatsApp,
			Tier:         models.TierBase,
			Status:       models.CreatorStatusPending,
		}
		creator.ID = uuid.NewString()
		creator.ProfilePhoto = defaultProfilePhoto(creator.ID)
		return s.creatorRepo.CreateTx(tx, creator)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user.Email, req.FullName)

	return s.issueTokens(user)
}

// AttachProfile backfills the creator profile for an account that has
// none, e.g. after an interrupted signup.
func (s *AuthServiceImpl) AttachProfile(userID string, req *dto.AttachProfileRequest) (*dto.CreatorDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("account not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Creator != nil {
		return nil, apperrors.ErrCreatorProfileExists
	}

	creator := &models.Creator{
		LinkedUserID: &user.ID,
		FullName:     req.FullName,
		Email:        user.Email,
		City:         req.City,
		Skills:       req.Skills,
		Bio:          req.Bio,
		WhatsApp:     req.WhatsApp,
		Tier:         models.TierBase,
		Status:       models.CreatorStatusPending,
	}
	creator.ID = uuid.NewString()
	creator.ProfilePhoto = defaultProfilePhoto(creator.ID)
	if err := s.creatorRepo.Create(creator); err != nil {
		return nil, apperrors.InternalError(err)
	}

	d := toCreatorDTO(creator, true)
	return &d, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshToken rotates the refresh token: the presented token is
// consumed even when it has expired.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// Logout revokes the refresh token. Unknown tokens are treated as
// already logged out.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Session resolves the caller's routing context: role, linked creator
// profile and whether onboarding is still pending.
func (s *AuthServiceImpl) Session(userID string) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("account not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user.Role = s.resolveRole(user)

	resp := &dto.SessionResponse{
		User: toUserDTO(user),
	}
	if user.Creator != nil {
		resp.CreatorID = user.Creator.ID
	}
	resp.NeedsOnboarding = user.Role == models.UserRoleCreator && user.Creator == nil

	return resp, nil
}

// resolveRole guards against rows holding an unknown role value.
// Such accounts are treated as creators and the fallback is logged.
func (s *AuthServiceImpl) resolveRole(user *models.User) models.UserRole {
	switch user.Role {
	case models.UserRoleVisitor, models.UserRoleCreator, models.UserRoleAdmin:
		return user.Role
	}
	logger.Warn("unknown user role, falling back to CREATOR",
		"user_id", user.ID, "role", string(user.Role))
	return models.UserRoleCreator
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	// The role fallback must reach the token too, or the session and
	// the middleware gates disagree about who the caller is.
	accessToken, err := auth.GenerateToken(user.ID, string(s.resolveRole(user)))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.CreateRefreshToken(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	if s.emailProvider == nil {
		return
	}
	err := s.emailProvider.SendTemplate(
		[]string{to},
		"Welcome to AIB Hub",
		email.TemplateWelcome,
		email.TemplateData{"Name": name},
	)
	if err != nil {
		logger.Warn("failed to send welcome email", "error", err)
	}
}

// defaultProfilePhoto gives every new profile a deterministic
// placeholder image until the creator uploads their own.
func defaultProfilePhoto(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/400/400"
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
