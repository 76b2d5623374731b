package service

import (
	"context"
	"strings"
	"testing"

	"atrium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contentRepoStub is a stub for repository.ContentRepository.
type contentRepoStub struct {
	createFn        func(context.Context, *models.Content) error
	getByIDFn       func(context.Context, uint) (*models.Content, error)
	listAllFn       func(context.Context, models.ContentKind) ([]models.Content, error)
	listByOwnerFn   func(context.Context, uint) ([]models.Content, error)
	deleteCascadeFn func(context.Context, uint) error
}

func (s *contentRepoStub) Create(ctx context.Context, content *models.Content) error {
	return s.createFn(ctx, content)
}
func (s *contentRepoStub) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	return s.getByIDFn(ctx, id)
}
func (s *contentRepoStub) ListAll(ctx context.Context, kind models.ContentKind) ([]models.Content, error) {
	return s.listAllFn(ctx, kind)
}
func (s *contentRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Content, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *contentRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

func noopContentRepo() *contentRepoStub {
	return &contentRepoStub{
		createFn: func(_ context.Context, c *models.Content) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Content, error) {
			return &models.Content{ID: id, Kind: models.KindArticle, Title: "t", Body: "b", OwnerID: 1}, nil
		},
		listAllFn:       func(_ context.Context, _ models.ContentKind) ([]models.Content, error) { return nil, nil },
		listByOwnerFn:   func(_ context.Context, _ uint) ([]models.Content, error) { return nil, nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func adminChecker(adminIDs ...uint) func(context.Context, uint) (bool, error) {
	return func(_ context.Context, userID uint) (bool, error) {
		for _, id := range adminIDs {
			if id == userID {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestContentService_CreateContentValidation(t *testing.T) {
	svc := NewContentService(noopContentRepo(), adminChecker())
	ctx := context.Background()
	ref := "blob://abc"

	tests := []struct {
		name string
		in   CreateContentInput
	}{
		{"Invalid kind", CreateContentInput{OwnerID: 1, Kind: "podcast", Title: "t", Body: "b"}},
		{"Empty title", CreateContentInput{OwnerID: 1, Kind: models.KindArticle, Title: "", Body: "b"}},
		{"Title too long", CreateContentInput{OwnerID: 1, Kind: models.KindArticle, Title: strings.Repeat("a", 201), Body: "b"}},
		{"Empty body", CreateContentInput{OwnerID: 1, Kind: models.KindArticle, Title: "t", Body: ""}},
		{"Body too long", CreateContentInput{OwnerID: 1, Kind: models.KindArticle, Title: "t", Body: strings.Repeat("a", 50001)}},
		{"MediaRef on article", CreateContentInput{OwnerID: 1, Kind: models.KindArticle, Title: "t", Body: "b", MediaRef: &ref}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContent(ctx, tt.in)
			require.Error(t, err)
			appErr, ok := err.(*models.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestContentService_CreateContentVideoWithMediaRef(t *testing.T) {
	var created *models.Content
	repo := noopContentRepo()
	repo.createFn = func(_ context.Context, c *models.Content) error {
		c.ID = 7
		created = c
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Content, error) {
		return created, nil
	}

	svc := NewContentService(repo, adminChecker())
	ref := "blob://video/1"

	got, err := svc.CreateContent(context.Background(), CreateContentInput{
		OwnerID: 3, Kind: models.KindVideo, Title: "clip", Body: "desc", MediaRef: &ref,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, models.KindVideo, got.Kind)
	require.NotNil(t, got.MediaRef)
	assert.Equal(t, ref, *got.MediaRef)
}

func TestContentService_ListAllRejectsUnknownKind(t *testing.T) {
	svc := NewContentService(noopContentRepo(), adminChecker())

	_, err := svc.ListAll(context.Background(), "podcast")
	require.Error(t, err)

	// Empty kind means both verticals.
	_, err = svc.ListAll(context.Background(), "")
	assert.NoError(t, err)
}

func TestContentService_DeleteContentOwnership(t *testing.T) {
	deleted := false
	repo := noopContentRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Content, error) {
		return &models.Content{ID: id, Kind: models.KindArticle, OwnerID: 10}, nil
	}
	repo.deleteCascadeFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := NewContentService(repo, adminChecker(99))

	// Non-owner, non-admin is rejected with an explicit error.
	_, err := svc.DeleteContent(context.Background(), DeleteContentInput{UserID: 11, ContentID: 5})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.False(t, deleted)

	// Owner may delete.
	_, err = svc.DeleteContent(context.Background(), DeleteContentInput{UserID: 10, ContentID: 5})
	require.NoError(t, err)
	assert.True(t, deleted)

	// Admin may delete someone else's content.
	deleted = false
	_, err = svc.DeleteContent(context.Background(), DeleteContentInput{UserID: 99, ContentID: 5})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestContentService_DeleteContentNotFound(t *testing.T) {
	repo := noopContentRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Content, error) {
		return nil, models.NewNotFoundError("Content", id)
	}

	svc := NewContentService(repo, adminChecker())

	_, err := svc.DeleteContent(context.Background(), DeleteContentInput{UserID: 1, ContentID: 404})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
