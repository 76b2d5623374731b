package service

import (
	"context"
	"testing"

	"atrium/internal/models"
	"atrium/internal/repository"
	"atrium/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteCascadeFn func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "someone"}, nil
		},
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

func TestUserService_SetAdmin(t *testing.T) {
	var updated *models.User
	repo := noopUserRepo()
	repo.updateFn = func(_ context.Context, u *models.User) error {
		updated = u
		return nil
	}

	svc := NewUserService(repo)

	user, err := svc.SetAdmin(context.Background(), 4, true)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	require.NotNil(t, updated)
	assert.True(t, updated.IsAdmin)

	user, err = svc.SetAdmin(context.Background(), 4, false)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestUserService_SetAdminWarmCachePreservesPasswordHash(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.NewTestRedis(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Username: "mallory", Password: string(hash)}
	require.NoError(t, db.Create(user).Error)

	// Two reads so the promote operates on a cache hit, not a fresh row.
	_, err = svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	_, err = svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	promoted, err := svc.SetAdmin(ctx, user.ID, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestUserService_SetAdminUnknownUser(t *testing.T) {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewUserService(repo)

	_, err := svc.SetAdmin(context.Background(), 404, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)
}

func TestUserService_DeleteUser(t *testing.T) {
	var deletedID uint
	repo := noopUserRepo()
	repo.deleteCascadeFn = func(_ context.Context, id uint) error {
		deletedID = id
		return nil
	}

	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), DeleteUserInput{CallerID: 1, TargetID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), deletedID)
}

func TestUserService_DeleteUserUnknownTarget(t *testing.T) {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	repo.deleteCascadeFn = func(_ context.Context, _ uint) error {
		t.Fatal("cascade should not run for a missing user")
		return nil
	}

	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), DeleteUserInput{CallerID: 1, TargetID: 404})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)
}
