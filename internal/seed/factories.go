// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password shared by all seeded users.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a realistic fake profile. All seeded users
// share DefaultPassword.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Fullname: gofakeit.Name(),
		Bio:      gofakeit.BuzzWord(),
		Phone:    gofakeit.Numerify("##########"),
		DialCode: "+1",
		Age:      f.rand.Intn(50) + 18,
		Image:    fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		Gender:   genders[f.rand.Intn(len(genders))],
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given author without persisting it.
// Creation times are spread backwards over maxDays for realistic feeds.
func (f *Factory) BuildPost(user *models.User, maxDays int, overrides ...func(*models.Post)) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		UserID:  user.ID,
		Caption: gofakeit.Sentence(5),
		Body:    gofakeit.Paragraph(1, 3, 5, "\n"),
		Tags:    fakeTags(f.rand.Intn(4)),
	}

	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedOn = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.CreateInBatches(posts, 100).Error
}

// CreateComment persists a comment by user on post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:     user.ID,
		PostID:     post.ID,
		Comment:    gofakeit.Sentence(8),
		Tags:       fakeTags(f.rand.Intn(3)),
		Visibility: true,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func fakeTags(n int) []string {
	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, gofakeit.HackerNoun())
	}
	return tags
}
