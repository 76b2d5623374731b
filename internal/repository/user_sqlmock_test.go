package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"atrium/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByUsernameSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		username      string
		mockBehavior  func()
		expectedUser  *models.User
		expectedError bool
	}{
		{
			name:     "Success",
			username: "testuser",
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "username", "is_admin"}).
					AddRow(1, "testuser", false)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("testuser", 1).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{ID: 1, Username: "testuser"},
		},
		{
			name:     "Miss Is Nil Not Error",
			username: "ghost",
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByUsername(ctx, tt.username)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.expectedUser == nil {
					assert.Nil(t, user)
				} else if assert.NotNil(t, user) {
					assert.Equal(t, tt.expectedUser.Username, user.Username)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CreateMapsPostgresUniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_username" (SQLSTATE 23505)`)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(pgErr)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{Username: "taken", Password: "x"})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE_USERNAME", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"Postgres duplicate key", errors.New(`duplicate key value violates unique constraint "uni_users_username"`), true},
		{"Postgres SQLSTATE", errors.New("SQLSTATE 23505"), true},
		{"SQLite", errors.New("UNIQUE constraint failed: users.username"), true},
		{"Unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintError(tt.err))
		})
	}
}
