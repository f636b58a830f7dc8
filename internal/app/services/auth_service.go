package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
	"github.com/vikass-pal/campusconnect/internal/pkg/auth"
	"github.com/vikass-pal/campusconnect/internal/pkg/localstore"
)

// AuthService resolves and manages the authenticated identity.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store      *store.Store
	blobs      *localstore.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store, blobs *localstore.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      st,
		blobs:      blobs,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user and issues a session for it.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	s.logger.Debug().Str("username", req.Username).Str("email", req.Email).Msg("Registering user")

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		Password:     hashed,
		FullName:     strings.TrimSpace(req.FullName),
		Bio:          "",
		Skills:       []string{},
		AcademicYear: req.AcademicYear,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Users.Insert(user); err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrUsernameTaken) {
			return nil, apperrors.NewCustomError(apperrors.ErrConflict, err.Error())
		}
		return nil, err
	}

	if err := s.persistUsers(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist users after register")
	}

	return s.issueSession(ctx, user)
}

// Login verifies credentials and issues a session. Credential verification
// is a local stub: the password is checked against the stored hash, nothing
// more.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.store.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if password == "" || !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Logout clears the persisted session.
func (s *authServiceImpl) Logout(ctx context.Context) error {
	return s.blobs.Delete(ctx, localstore.SessionKey)
}

// CurrentSession returns the persisted session, or nil when no user is
// logged in on this client context.
func (s *authServiceImpl) CurrentSession(ctx context.Context) (*models.Session, error) {
	var session models.Session
	found, err := s.blobs.Get(ctx, localstore.SessionKey, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// GetProfile returns the user with the given id.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return s.store.Users.GetByID(userID)
}

// UpdateProfile merges the patch into the stored user and refreshes the
// persisted users list and session snapshot.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (models.User, error) {
	updated, err := s.store.Users.Update(userID, func(user *models.User) error {
		if req.FullName != nil {
			if strings.TrimSpace(*req.FullName) == "" {
				return apperrors.NewValidationError("fullName must not be empty")
			}
			user.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.Bio != nil {
			user.Bio = *req.Bio
		}
		if req.Skills != nil {
			user.Skills = append([]string(nil), *req.Skills...)
		}
		if req.AcademicYear != nil {
			user.AcademicYear = *req.AcademicYear
		}
		if req.ProfilePicture != nil {
			user.ProfilePicture = *req.ProfilePicture
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	if err := s.persistUsers(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist users after profile update")
	}

	// Keep the persisted session snapshot in step with the profile.
	if session, err := s.CurrentSession(ctx); err == nil && session != nil && session.User.ID == userID {
		session.User = updated
		if err := s.blobs.Put(ctx, localstore.SessionKey, session); err != nil {
			s.logger.Error().Err(err).Msg("Failed to refresh session snapshot")
		}
	}

	return updated, nil
}

func (s *authServiceImpl) issueSession(ctx context.Context, user models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		s.logger.Error().Err(err).Str("userId", user.ID).Msg("Failed to generate session token")
		return nil, err
	}

	session := models.Session{Token: token, User: user}
	if err := s.blobs.Put(ctx, localstore.SessionKey, session); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist session")
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}

func (s *authServiceImpl) persistUsers(ctx context.Context) error {
	return s.blobs.Put(ctx, localstore.UsersKey, s.store.Users.Snapshot())
}
