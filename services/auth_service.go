package services

import (
	"context"
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator checks a Google ID token issued for audience
type IDTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type AuthServiceOptions struct {
	Users          repository.UserRepository
	Tokens         *TokenService
	GoogleClientID string
	// ValidateIDToken defaults to idtoken.Validate
	ValidateIDToken IDTokenValidator
	Logger          logger.Logger
}

type AuthService struct {
	users          repository.UserRepository
	tokens         *TokenService
	googleClientID string
	validateID     IDTokenValidator
	logger         logger.Logger
	now            func() time.Time
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	validate := opts.ValidateIDToken
	if validate == nil {
		validate = idtoken.Validate
	}
	return &AuthService{
		users:          opts.Users,
		tokens:         opts.Tokens,
		googleClientID: opts.GoogleClientID,
		validateID:     validate,
		logger:         log,
		now:            time.Now,
	}
}

func invalidCredentials() error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "Invalid credentials", apperrors.ErrInvalidCredentials)
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) register(ctx context.Context, input dto.RegisterInput, role int) (*models.User, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	user := &models.User{
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Password:    string(hashed),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Role:        role,
		IsActive:    true,
		PhoneNumber: input.PhoneNumber,
		Nationality: input.Nationality,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user %s registered with role %d", user.ID, role)
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	user, err := s.register(ctx, input, constants.RoleUser)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// RegisterAdmin creates an admin account. The caller keeps its own session.
func (s *AuthService) RegisterAdmin(ctx context.Context, input dto.RegisterInput) (*models.User, error) {
	return s.register(ctx, input, constants.RoleAdmin)
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if apperrors.HasCode(err, apperrors.ErrCodeDBNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, invalidCredentials()
	}
	if !user.IsActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeAccountDisabled, "Account is deactivated", nil)
	}
	return s.issue(user)
}

// GoogleLogin signs in with a Google ID token, creating the account on
// first use
func (s *AuthService) GoogleLogin(ctx context.Context, input dto.GoogleLoginInput) (*dto.AuthResponse, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if s.googleClientID == "" {
		return nil, apperrors.Upstream("Google sign-in is not configured", nil)
	}

	payload, err := s.validateID(ctx, input.IDToken, s.googleClientID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid Google token", err)
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Google token has no email", nil)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if apperrors.HasCode(err, apperrors.ErrCodeDBNotFound) {
		given, _ := payload.Claims["given_name"].(string)
		family, _ := payload.Claims["family_name"].(string)
		picture, _ := payload.Claims["picture"].(string)
		user = &models.User{
			Email:          strings.ToLower(email),
			FirstName:      given,
			LastName:       family,
			ProfilePicture: picture,
			Role:           constants.RoleUser,
			IsActive:       true,
			CreatedAt:      s.now().UTC(),
		}
		err = s.users.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeAccountDisabled, "Account is deactivated", nil)
	}
	return s.issue(user)
}

// Authenticate resolves a bearer token to the caller's session
func (s *AuthService) Authenticate(token string) (models.Session, error) {
	userID, role, err := s.tokens.GetUserIDFromToken(token)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: userID, Role: role}, nil
}
