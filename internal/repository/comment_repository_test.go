package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum/internal/models"
)

func setupCommentMock(t *testing.T) (*CommentRepositoryImpl, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewCommentRepository(sqlxDB), mock
}

func TestCommentRepository_Create(t *testing.T) {
	repo, mock := setupCommentMock(t)

	comment := &models.Comment{
		Text:     "привет",
		PostID:   "post-1",
		AuthorID: "user-1",
	}

	mock.ExpectExec(`
		INSERT INTO comments (comment_id, text, post_id, author_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`).
		WithArgs(sqlmock.AnyArg(), "привет", "post-1", "user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), comment)

	assert.NoError(t, err)
	assert.NotEmpty(t, comment.CommentID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentRepository_UpdateScopedToAuthor(t *testing.T) {
	repo, mock := setupCommentMock(t)

	t.Run("Свой комментарий обновляется", func(t *testing.T) {
		mock.ExpectExec(`UPDATE comments SET text = $1 WHERE comment_id = $2 AND author_id = $3`).
			WithArgs("новый текст", "comment-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), "comment-1", "user-1", "новый текст")

		assert.NoError(t, err)
	})

	t.Run("Чужой комментарий даёт ErrNotFound", func(t *testing.T) {
		// выборка сужена до author_id, поэтому чужой комментарий
		// неотличим от несуществующего
		mock.ExpectExec(`UPDATE comments SET text = $1 WHERE comment_id = $2 AND author_id = $3`).
			WithArgs("новый текст", "comment-1", "user-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), "comment-1", "user-2", "новый текст")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCommentRepository_DeleteScopedToAuthor(t *testing.T) {
	repo, mock := setupCommentMock(t)

	t.Run("Свой комментарий удаляется", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1 AND author_id = $2`).
			WithArgs("comment-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "comment-1", "user-1")

		assert.NoError(t, err)
	})

	t.Run("Чужой комментарий даёт ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = $1 AND author_id = $2`).
			WithArgs("comment-1", "user-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "comment-1", "user-2")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCommentRepository_GetByPost(t *testing.T) {
	repo, mock := setupCommentMock(t)

	first := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	rows := sqlmock.NewRows([]string{
		"comment_id", "text", "post_id", "author_id", "created_at", "author_username",
	}).
		AddRow("c1", "первый", "post-1", "u1", first, "ivan").
		AddRow("c2", "второй", "post-1", "u2", second, "petr")

	mock.ExpectQuery(`
		SELECT c.comment_id, c.text, c.post_id, c.author_id, c.created_at,
			u.username AS author_username
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`).
		WithArgs("post-1").
		WillReturnRows(rows)

	comments, err := repo.GetByPost(context.Background(), "post-1")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	// порядок по created_at от старых к новым
	assert.True(t, !comments[1].CreatedAt.Before(comments[0].CreatedAt))
}
