package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/userweb/engine/internal/models"
	appErr "github.com/userweb/engine/pkg/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_ListStorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	cause := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(cause)

	users, err := repo.List(context.Background())
	assert.Nil(t, users)
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailStorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	cause := errors.New("too many connections")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnError(cause)

	var u models.User
	err := repo.GetByEmail(context.Background(), "a@x.com", &u)
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "address", "contact_number"}))

	var u models.User
	err := repo.GetByEmail(context.Background(), "missing@x.com", &u)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
