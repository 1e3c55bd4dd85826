package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository(t *testing.T) {
	existsSQL := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`)

	t.Run("Success - Member", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAdminRepo(db)
		id := uuid.New()
		mock.ExpectQuery(existsSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		ok, err := repo.IsAdmin(t.Context(), id)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAdminRepo(db)
		mock.ExpectQuery(existsSQL).WillReturnError(errors.New("timeout"))

		ok, err := repo.IsAdmin(t.Context(), uuid.New())

		assert.False(t, ok)
		assert.ErrorContains(t, err, "checking admin membership")
	})

	t.Run("Success - List", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAdminRepo(db)
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, created_at FROM admins`)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(id.String(), time.Now()))

		admins, err := repo.ListAdmins(t.Context())

		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, id, admins[0].UserID)
	})

	t.Run("Success - Grant is idempotent", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAdminRepo(db)
		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id) DO NOTHING`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.GrantAdmin(t.Context(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Revoke non-admin", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewAdminRepo(db)
		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM admins WHERE user_id = $1`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RevokeAdmin(t.Context(), id)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
