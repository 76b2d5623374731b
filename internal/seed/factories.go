package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"atrium/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// BuildContent constructs a content struct without persisting it. Useful
// for batching.
func (f *Factory) BuildContent(owner *models.User, kind models.ContentKind, overrides ...func(*models.Content)) *models.Content {
	content := &models.Content{
		Kind:    kind,
		Title:   gofakeit.Sentence(5),
		Body:    gofakeit.Paragraph(1, 3, 5, "\n"),
		OwnerID: owner.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	content.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	if kind == models.KindVideo {
		youtubeIDs := []string{"dQw4w9WgXcQ", "9bZkp7q19f0", "3JZ_D3ELwOQ", "L_jWHffIx5E", "kXYiU_JCYtU"}
		id := youtubeIDs[f.rng.Intn(len(youtubeIDs))]
		ref := fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
		content.MediaRef = &ref
		content.Body = gofakeit.Sentence(12)
	}

	for _, override := range overrides {
		override(content)
	}
	return content
}

// CreateContentsBatch persists multiple contents in a single DB call when possible.
func (f *Factory) CreateContentsBatch(contents []*models.Content) error {
	if len(contents) == 0 {
		return nil
	}
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateContentsBatch: %d contents (no DB write)", len(contents))
		return nil
	}
	return f.db.Create(&contents).Error
}

// BuildComment constructs a comment on the given content. Pass a parent to
// build a reply; replies always attach to a top-level comment.
func (f *Factory) BuildComment(author *models.User, content *models.Content, parent *models.Comment) *models.Comment {
	comment := &models.Comment{
		Body:      gofakeit.Sentence(f.rng.Intn(12) + 4),
		ContentID: content.ID,
		AuthorID:  author.ID,
	}
	if parent != nil {
		comment.ParentCommentID = &parent.ID
	}
	return comment
}

// CreateComment persists a single comment.
func (f *Factory) CreateComment(comment *models.Comment) error {
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateComment on content %d (no DB write)", comment.ContentID)
		return nil
	}
	return f.db.Create(comment).Error
}

// CreateLike persists a like, ignoring duplicates so presets can be rerun.
func (f *Factory) CreateLike(user *models.User, content *models.Content) error {
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateLike user=%d content=%d (no DB write)", user.ID, content.ID)
		return nil
	}
	like := &models.Like{UserID: user.ID, ContentID: content.ID}
	err := f.db.Create(like).Error
	if err != nil && isDuplicateErr(err) {
		return nil
	}
	return err
}
