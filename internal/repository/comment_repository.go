package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogicum/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, text, post_id, author_id, created_at)
		VALUES (:comment_id, :text, :post_id, :author_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

// GetByPost отдаёт комментарии поста в порядке создания (от старых к новым).
func (r *CommentRepositoryImpl) GetByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.text, c.post_id, c.author_id, c.created_at,
			u.username AS author_username
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

// GetByIDForAuthor ищет комментарий только среди принадлежащих автору.
// Чужой или несуществующий комментарий отсюда неразличимы: и то и другое —
// ErrNotFound, отдельной ошибки прав для комментариев нет.
func (r *CommentRepositoryImpl) GetByIDForAuthor(ctx context.Context, commentID, authorID string) (*models.Comment, error) {
	query := `
		SELECT c.comment_id, c.text, c.post_id, c.author_id, c.created_at,
			u.username AS author_username
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.comment_id = $1 AND c.author_id = $2
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий %s: %w", commentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, commentID, authorID, text string) error {
	query := `UPDATE comments SET text = $1 WHERE comment_id = $2 AND author_id = $3`

	result, err := r.db.ExecContext(ctx, query, text, commentID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий %s: %w", commentID, models.ErrNotFound)
	}

	return nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID, authorID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий %s: %w", commentID, models.ErrNotFound)
	}

	return nil
}

func (r *CommentRepositoryImpl) CountByPost(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте комментариев: %w", err)
	}

	return count, nil
}
