// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"atrium/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArticles int
	NumVideos   int
	ShouldClean bool
	MaxDays     int
	DryRun      bool
}

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Betty",
		"Anthony", "Margaret", "Mark", "Sandra", "Steven", "Kimberly", "Paul", "Emily",
		"Andrew", "Donna", "Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda",
		"George", "Melissa", "Edward", "Deborah", "Jason", "Sharon", "Ryan", "Cynthia",
		"Jacob", "Kathleen", "Eric", "Angela", "Jonathan", "Helen", "Stephen", "Anna",
		"Justin", "Pamela", "Scott", "Nicole", "Brandon", "Emma", "Benjamin", "Samantha",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
		"Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d articles, %d videos...",
		opts.NumUsers, opts.NumArticles, opts.NumVideos)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean && !opts.DryRun {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	factory := NewFactory(db, opts)

	articles, err := createContents(factory, users, models.KindArticle, opts.NumArticles)
	if err != nil {
		return fmt.Errorf("failed to create articles: %w", err)
	}
	log.Printf("✓ %d articles created", len(articles))

	videos, err := createContents(factory, users, models.KindVideo, opts.NumVideos)
	if err != nil {
		return fmt.Errorf("failed to create videos: %w", err)
	}
	log.Printf("✓ %d videos created", len(videos))

	commented, err := createComments(factory, users, articles, videos)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", commented)

	liked, err := createLikes(factory, users, videos)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("✓ %d likes created", liked)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, contents, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func generateRandomName() (string, string) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	first := firstNames[r.Intn(len(firstNames))]
	last := lastNames[r.Intn(len(lastNames))]
	return first, last
}

func generateUsername(first, last string) string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	formats := []string{"%s%s", "%s_%s", "%s%d", "%s_%d"}
	format := formats[r.Intn(len(formats))]

	switch format {
	case "%s%d", "%s_%d":
		return strings.ToLower(fmt.Sprintf(format, first, r.Intn(1000)))
	default:
		return strings.ToLower(fmt.Sprintf(format, first, last))
	}
}

func createUsers(db *gorm.DB, opts Options) ([]models.User, error) {
	count := opts.NumUsers
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	if opts.DryRun {
		for i := 0; i < count; i++ {
			first, last := generateRandomName()
			users = append(users, models.User{
				ID:       uint(i + 1),
				Username: generateUsername(first, last),
				Password: string(hashedPassword),
			})
		}
		log.Printf("[dry-run] createUsers: %d users (no DB write)", count)
		return users, nil
	}

	// Always include some specific users for consistency
	if count >= 2 {
		baseUsers := []string{"demo", "test"}
		for _, u := range baseUsers {
			user := models.User{
				Username: u,
				Password: string(hashedPassword),
			}
			if err := db.Where(models.User{Username: u}).FirstOrCreate(&user).Error; err != nil {
				return nil, err
			}
			users = append(users, user)
		}
	}

	for len(users) < count {
		first, last := generateRandomName()
		user := models.User{
			Username: generateUsername(first, last),
			Password: string(hashedPassword),
		}
		if err := db.Create(&user).Error; err != nil {
			// username collisions are possible with random generation, skip and retry
			if isDuplicateErr(err) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func createContents(f *Factory, users []models.User, kind models.ContentKind, count int) ([]*models.Content, error) {
	if len(users) == 0 || count == 0 {
		return nil, nil
	}
	contents := make([]*models.Content, 0, count)
	for i := 0; i < count; i++ {
		owner := users[f.rng.Intn(len(users))]
		contents = append(contents, f.BuildContent(&owner, kind))
	}
	if err := f.CreateContentsBatch(contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func createComments(f *Factory, users []models.User, articles, videos []*models.Content) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	created := 0

	// Articles get threads: a handful of top-level comments, some with replies.
	for _, article := range articles {
		topLevel := f.rng.Intn(4)
		for i := 0; i < topLevel; i++ {
			author := users[f.rng.Intn(len(users))]
			parent := f.BuildComment(&author, article, nil)
			if err := f.CreateComment(parent); err != nil {
				return created, err
			}
			created++

			replies := f.rng.Intn(3)
			for j := 0; j < replies; j++ {
				replier := users[f.rng.Intn(len(users))]
				reply := f.BuildComment(&replier, article, parent)
				if err := f.CreateComment(reply); err != nil {
					return created, err
				}
				created++
			}
		}
	}

	// Video comments are flat.
	for _, video := range videos {
		flat := f.rng.Intn(3)
		for i := 0; i < flat; i++ {
			author := users[f.rng.Intn(len(users))]
			if err := f.CreateComment(f.BuildComment(&author, video, nil)); err != nil {
				return created, err
			}
			created++
		}
	}

	return created, nil
}

func createLikes(f *Factory, users []models.User, videos []*models.Content) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	created := 0
	for _, video := range videos {
		likers := f.rng.Intn(len(users) + 1)
		perm := f.rng.Perm(len(users))
		for i := 0; i < likers; i++ {
			user := users[perm[i]]
			if err := f.CreateLike(&user, video); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
