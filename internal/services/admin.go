package service

import (
	"context"
	"errors"

	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/google/uuid"
)

type AdminService interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	GrantAdmin(ctx context.Context, userID uuid.UUID) error
	RevokeAdmin(ctx context.Context, actorID, userID uuid.UUID) error
	ListUsers(ctx context.Context, page, size int) ([]models.User, int, error)
}

type adminService struct {
	admins repository.AdminRepository
	users  repository.UserRepository
}

func NewAdminService(admins repository.AdminRepository, users repository.UserRepository) AdminService {
	return &adminService{admins: admins, users: users}
}

// IsAdmin backs the admin guard middleware.
func (s *adminService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		return false, appErrors.DatabaseError("Failed to check admin membership").WithError(err)
	}

	return ok, nil
}

func (s *adminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch admins").WithError(err)
	}

	return admins, nil
}

func (s *adminService) GrantAdmin(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if err := s.admins.GrantAdmin(ctx, userID); err != nil {
		return appErrors.DatabaseError("Failed to grant admin").WithError(err)
	}

	return nil
}

// RevokeAdmin refuses to let an admin remove themselves, so the panel can
// never lock out the last person using it.
func (s *adminService) RevokeAdmin(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return appErrors.BadRequestError("Admins cannot revoke their own access")
	}

	if err := s.admins.RevokeAdmin(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Admin not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to revoke admin").WithError(err)
	}

	return nil
}

func (s *adminService) ListUsers(ctx context.Context, page, size int) ([]models.User, int, error) {
	users, total, err := s.users.ListUsers(ctx, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, total, nil
}
