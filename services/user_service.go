package services

import (
	"context"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"
)

type UserServiceOptions struct {
	Users    repository.UserRepository
	Uploader MediaUploader
	Logger   logger.Logger
}

type UserService struct {
	users    repository.UserRepository
	uploader MediaUploader
	logger   logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &UserService{users: opts.Users, uploader: opts.Uploader, logger: log}
}

func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile edits the caller's own details. A picture, when sent,
// replaces the stored profile picture.
func (s *UserService) UpdateProfile(ctx context.Context, session models.Session, patch dto.ProfilePatch, picture *ImageFile) (*models.User, error) {
	if session.UserID == "" {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if picture != nil {
		if err := checkImageCount([]ImageFile{*picture}); err != nil {
			return nil, err
		}
		urls, err := UploadImages(ctx, s.uploader, constants.AvatarUploadDir, []ImageFile{*picture})
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = urls[0]
	}

	patch.Apply(user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user %s updated their profile", user.ID)
	return user, nil
}

// UpdateByEmail lets an admin edit any account, including its role and
// active flag
func (s *UserService) UpdateByEmail(ctx context.Context, email string, patch dto.AdminUserPatch) (*models.User, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user %s updated by an admin", user.ID)
	return user, nil
}

// Deactivate switches the caller's own account off
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return apperrors.Validation("Account is already deactivated")
	}
	if err := s.users.SetActive(ctx, userID, false); err != nil {
		return err
	}
	s.logger.Info("user %s deactivated", userID)
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user %s deleted", id)
	return nil
}
