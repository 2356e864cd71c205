package seed

import (
	"fmt"
	"log"

	"pulse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder populates the database with a realistic social mesh: users, follow
// edges, posts (including reposts), comments, likes and saved posts.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Deletion runs child-first so foreign key
// constraints hold at every step.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.SavedPost{},
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.FollowEdge{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// SeedSocialMesh creates numUsers accounts and a sparse follow graph among
// them, roughly 10% of all possible ordered pairs.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	edges := 0
	for _, follower := range users {
		for _, followee := range users {
			if follower.ID == followee.ID || s.factory.rand.Intn(10) != 0 {
				continue
			}
			edge := &models.FollowEdge{
				FollowedByID:   follower.ID,
				FollowedUserID: followee.ID,
				Accepted:       true,
			}
			err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
			if err != nil {
				return nil, fmt.Errorf("creating follow edge: %w", err)
			}
			edges++
		}
	}

	log.Printf("Seeded %d users and %d follow edges", len(users), edges)
	return users, nil
}

// SeedEngagement creates numPosts posts across the given users, then layers
// reposts, comments, likes and saves on top of them.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed posts for")
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rand.Intn(len(users))]
		posts = append(posts, s.factory.BuildPost(author, 90))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, fmt.Errorf("creating posts: %w", err)
	}

	// Roughly one repost per ten posts.
	for i := 0; i < numPosts/10; i++ {
		original := posts[s.factory.rand.Intn(len(posts))]
		author := users[s.factory.rand.Intn(len(users))]
		repost := s.factory.BuildPost(author, 30, func(p *models.Post) {
			p.OriginalPostID = &original.ID
		})
		if err := s.db.Create(repost).Error; err != nil {
			return nil, fmt.Errorf("creating repost: %w", err)
		}
	}

	comments := 0
	for _, post := range posts {
		for i := 0; i < s.factory.rand.Intn(4); i++ {
			commenter := users[s.factory.rand.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return nil, fmt.Errorf("creating comment: %w", err)
			}
			comments++
		}
	}

	likes := 0
	saves := 0
	for _, post := range posts {
		for _, user := range users {
			if s.factory.rand.Intn(5) == 0 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					return nil, fmt.Errorf("creating like: %w", err)
				}
				likes++
			}
			if s.factory.rand.Intn(20) == 0 {
				saved := &models.SavedPost{UserID: user.ID, PostID: post.ID}
				if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(saved).Error; err != nil {
					return nil, fmt.Errorf("creating saved post: %w", err)
				}
				saves++
			}
		}
	}

	log.Printf("Seeded %d posts, %d comments, %d likes, %d saves", len(posts), comments, likes, saves)
	return posts, nil
}
