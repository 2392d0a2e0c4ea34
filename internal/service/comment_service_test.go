package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogicum/internal/models"
)

func TestAddComment(t *testing.T) {
	t.Run("комментарий к существующему посту", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		commentRepo := new(mockCommentRepo)
		svc := NewCommentService(commentRepo, postRepo)

		postRepo.On("GetByID", mock.Anything, "post-1").Return(&models.Post{PostID: "post-1"}, nil)
		commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.PostID == "post-1" && c.AuthorID == "user-1" && c.Text == "Отличный пост"
		})).Return(nil)

		comment, err := svc.AddComment(context.Background(), "post-1", "user-1", "Отличный пост")

		require.NoError(t, err)
		assert.Equal(t, "post-1", comment.PostID)
		commentRepo.AssertExpectations(t)
	})

	t.Run("несуществующий пост", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		commentRepo := new(mockCommentRepo)
		svc := NewCommentService(commentRepo, postRepo)

		postRepo.On("GetByID", mock.Anything, "missing").Return(nil, models.ErrNotFound)

		_, err := svc.AddComment(context.Background(), "missing", "user-1", "Текст")

		assert.ErrorIs(t, err, models.ErrNotFound)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEditCommentScopedToAuthor(t *testing.T) {
	postRepo := new(mockPostRepo)
	commentRepo := new(mockCommentRepo)
	svc := NewCommentService(commentRepo, postRepo)

	// выборка сужена до author_id: чужой комментарий — ErrNotFound
	commentRepo.On("GetByIDForAuthor", mock.Anything, "c-1", "stranger-1").Return(nil, models.ErrNotFound)

	_, err := svc.EditComment(context.Background(), "c-1", "stranger-1", "Исправлено")

	assert.ErrorIs(t, err, models.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditOwnComment(t *testing.T) {
	postRepo := new(mockPostRepo)
	commentRepo := new(mockCommentRepo)
	svc := NewCommentService(commentRepo, postRepo)

	commentRepo.On("GetByIDForAuthor", mock.Anything, "c-1", "user-1").
		Return(&models.Comment{CommentID: "c-1", PostID: "post-1", AuthorID: "user-1", Text: "Старый текст"}, nil)
	commentRepo.On("Update", mock.Anything, "c-1", "user-1", "Новый текст").Return(nil)

	comment, err := svc.EditComment(context.Background(), "c-1", "user-1", "Новый текст")

	require.NoError(t, err)
	assert.Equal(t, "Новый текст", comment.Text)
}

func TestDeleteCommentReturnsPostID(t *testing.T) {
	postRepo := new(mockPostRepo)
	commentRepo := new(mockCommentRepo)
	svc := NewCommentService(commentRepo, postRepo)

	commentRepo.On("GetByIDForAuthor", mock.Anything, "c-1", "user-1").
		Return(&models.Comment{CommentID: "c-1", PostID: "post-1", AuthorID: "user-1"}, nil)
	commentRepo.On("Delete", mock.Anything, "c-1", "user-1").Return(nil)

	postID, err := svc.DeleteComment(context.Background(), "c-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "post-1", postID)
}
