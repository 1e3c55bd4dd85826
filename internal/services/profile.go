package service

import (
	"context"
	"errors"

	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, req *models.UpdateUsernameRequest) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, req *models.UpdateAvatarRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *models.UpdatePasswordRequest) error
}

type profileService struct {
	users    repository.UserRepository
	identity IdentityService
}

func NewProfileService(users repository.UserRepository, identity IdentityService) ProfileService {
	return &profileService{users: users, identity: identity}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

// update loads the user, applies fn, stores the result and refreshes the
// identity snapshot so the new values show up on the next request.
func (s *profileService) update(ctx context.Context, userID uuid.UUID, fn func(u *models.User) error) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(user); err != nil {
		return nil, err
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, appErrors.DatabaseError("Failed to update profile").WithError(err)
	}

	s.identity.Refresh(ctx, user)

	return user, nil
}

func (s *profileService) UpdateUsername(ctx context.Context, userID uuid.UUID, req *models.UpdateUsernameRequest) (*models.User, error) {
	return s.update(ctx, userID, func(u *models.User) error {
		u.Username = req.Username
		return nil
	})
}

func (s *profileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, req *models.UpdateAvatarRequest) (*models.User, error) {
	return s.update(ctx, userID, func(u *models.User) error {
		u.AvatarURL = req.AvatarURL
		return nil
	})
}

func (s *profileService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *models.UpdatePasswordRequest) error {
	_, err := s.update(ctx, userID, func(u *models.User) error {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return appErrors.InternalError("Failed to secure password").WithError(err)
		}

		u.Password = string(hashedPassword)

		return nil
	})

	return err
}
