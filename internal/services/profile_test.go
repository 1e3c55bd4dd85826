package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	repoMocks "github.com/almasezhe/warauction/internal/repositories/mocks"
	service "github.com/almasezhe/warauction/internal/services"
	svcMocks "github.com/almasezhe/warauction/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupProfile(t *testing.T) (service.ProfileService, *repoMocks.UserRepository, *svcMocks.IdentityService) {
	t.Helper()

	users := repoMocks.NewUserRepository(t)
	identity := svcMocks.NewIdentityService(t)

	return service.NewProfileService(users, identity), users, identity
}

func TestUpdateUsername(t *testing.T) {
	t.Run("Success - Stored and snapshot refreshed", func(t *testing.T) {
		// Arrange
		svc, users, identity := setupProfile(t)
		userID := uuid.New()
		users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Username: "old"}, nil).Once()
		users.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "gunner"
		})).Return(nil).Once()
		identity.On("Refresh", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "gunner"
		})).Return(&models.Identity{UserID: userID, Username: "gunner"}).Once()

		// Act
		user, err := svc.UpdateUsername(testContext(), userID, &models.UpdateUsernameRequest{Username: "gunner"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "gunner", user.Username)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		svc, users, _ := setupProfile(t)
		userID := uuid.New()
		users.On("GetUserByID", mock.Anything, userID).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.UpdateUsername(testContext(), userID, &models.UpdateUsernameRequest{Username: "gunner"})

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Save error skips the snapshot", func(t *testing.T) {
		svc, users, _ := setupProfile(t)
		userID := uuid.New()
		users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil).Once()
		users.On("UpdateUser", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

		_, err := svc.UpdateUsername(testContext(), userID, &models.UpdateUsernameRequest{Username: "gunner"})

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestUpdateAvatar(t *testing.T) {
	svc, users, identity := setupProfile(t)
	userID := uuid.New()
	url := "https://img.example.com/me.png"

	users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil).Once()
	users.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool { return u.AvatarURL == url })).Return(nil).Once()
	identity.On("Refresh", mock.Anything, mock.Anything).Return(&models.Identity{UserID: userID}).Once()

	user, err := svc.UpdateAvatar(testContext(), userID, &models.UpdateAvatarRequest{AvatarURL: url})

	require.NoError(t, err)
	assert.Equal(t, url, user.AvatarURL)
}

func TestUpdatePassword(t *testing.T) {
	svc, users, identity := setupProfile(t)
	userID := uuid.New()

	users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Password: "old-hash"}, nil).Once()
	users.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret!")) == nil
	})).Return(nil).Once()
	identity.On("Refresh", mock.Anything, mock.Anything).Return(&models.Identity{UserID: userID}).Once()

	err := svc.UpdatePassword(testContext(), userID, &models.UpdatePasswordRequest{Password: "s3cret!"})

	assert.NoError(t, err)
}
