package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	reader := createTestUser(t, db, "reader@example.com")

	post := &models.Post{UserID: author.ID, Caption: "discuss below"}
	require.NoError(t, postRepo.Create(ctx, post))
	otherPost := &models.Post{UserID: author.ID, Caption: "different thread"}
	require.NoError(t, postRepo.Create(ctx, otherPost))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			UserID:     reader.ID,
			PostID:     post.ID,
			Comment:    fmt.Sprintf("comment %d", i),
			CreatedOn:  base.Add(time.Duration(i) * time.Minute),
			Visibility: true,
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Comment{
		UserID: reader.ID, PostID: otherPost.ID, Comment: "elsewhere", Visibility: true,
	}))

	t.Run("ListByPost scopes and joins", func(t *testing.T) {
		comments, err := repo.ListByPost(ctx, post.ID, ListParams{Limit: 10, Sort: SortAsc})
		require.NoError(t, err)
		require.Len(t, comments, 5)
		assert.Equal(t, "comment 0", comments[0].Comment)
		require.NotNil(t, comments[0].User)
		assert.Equal(t, reader.ID, comments[0].User.ID)
		require.NotNil(t, comments[0].Post)
		assert.Equal(t, post.PublicID, comments[0].Post.PublicID)
	})

	t.Run("descending order reverses the page", func(t *testing.T) {
		comments, err := repo.ListByPost(ctx, post.ID, ListParams{Limit: 10, Sort: SortDesc})
		require.NoError(t, err)
		require.Len(t, comments, 5)
		assert.Equal(t, "comment 4", comments[0].Comment)
	})

	t.Run("pagination windows the sorted set", func(t *testing.T) {
		comments, err := repo.ListByPost(ctx, post.ID, ListParams{Limit: 2, Skip: 2, Sort: SortAsc})
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "comment 2", comments[0].Comment)
		assert.Equal(t, "comment 3", comments[1].Comment)
	})

	t.Run("Update and Delete round-trip", func(t *testing.T) {
		comment := &models.Comment{
			UserID: reader.ID, PostID: post.ID, Comment: "editable", Visibility: true,
		}
		require.NoError(t, repo.Create(ctx, comment))

		comment.Comment = "edited"
		now := time.Now()
		comment.EditedOn = &now
		require.NoError(t, repo.Update(ctx, comment))

		got, err := repo.GetByPublicID(ctx, comment.PublicID)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Comment)
		require.NotNil(t, got.EditedOn)

		require.NoError(t, repo.Delete(ctx, comment.ID))
		_, err = repo.GetByPublicID(ctx, comment.PublicID)
		assert.True(t, models.IsCode(err, "NOT_FOUND"))
	})
}
