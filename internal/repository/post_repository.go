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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// postColumns — общий SELECT для всех выборок постов: автор и категория
// подтягиваются join-ом, количество комментариев считается подзапросом
// при каждом обращении (нигде не кэшируется).
const postColumns = `
		p.post_id, p.title, p.text, p.pub_date, p.author_id,
		p.location_id, p.category_id, p.image_url, p.is_published, p.created_at,
		u.username AS author_username,
		c.slug AS category_slug,
		c.is_published AS category_is_published,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.post_id) AS comment_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN categories c ON c.category_id = p.category_id`

// feedCondition — условия видимости в списках. Пост без категории в ленту
// не попадает: лента и страницы категорий показывают только
// категоризированные публикации (условие вшито в запрос, а не
// применяется к строкам после выборки).
const feedCondition = `p.is_published = TRUE
		AND p.pub_date <= $1
		AND c.is_published = TRUE`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts
		(post_id, title, text, pub_date, author_id, location_id, category_id, image_url, is_published, created_at)
		VALUES
		(:post_id, :title, :text, :pub_date, :author_id, :location_id, :category_id, :image_url, :is_published, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост %s: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetFeed(ctx context.Context, now time.Time, limit, offset int) ([]models.Post, error) {
	query := `SELECT ` + postColumns + `
	WHERE ` + feedCondition + `
	ORDER BY p.pub_date DESC
	LIMIT $2 OFFSET $3`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountFeed(ctx context.Context, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts p
		JOIN categories c ON c.category_id = p.category_id
		WHERE ` + feedCondition

	var count int
	err := r.db.GetContext(ctx, &count, query, now)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов ленты: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) GetByCategory(ctx context.Context, categoryID string, now time.Time, limit, offset int) ([]models.Post, error) {
	query := `SELECT ` + postColumns + `
	WHERE ` + feedCondition + ` AND p.category_id = $2
	ORDER BY p.pub_date DESC
	LIMIT $3 OFFSET $4`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, now, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов категории: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByCategory(ctx context.Context, categoryID string, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts p
		JOIN categories c ON c.category_id = p.category_id
		WHERE ` + feedCondition + ` AND p.category_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, now, categoryID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов категории: %w", err)
	}

	return count, nil
}

// GetByAuthor возвращает все посты автора без фильтра по публикации:
// в профиле автор видит и черновики, и отложенные посты.
func (r *PostRepositoryImpl) GetByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := `SELECT ` + postColumns + `
	WHERE p.author_id = $1
	ORDER BY p.pub_date DESC
	LIMIT $2 OFFSET $3`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			text = :text,
			pub_date = :pub_date,
			location_id = :location_id,
			category_id = :category_id,
			is_published = :is_published
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", post.PostID, models.ErrNotFound)
	}

	return nil
}

// Delete удаляет пост; комментарии уходят каскадом на уровне БД
// (FK ON DELETE CASCADE), отдельного прохода по ним нет.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", postID, models.ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) SetImageURL(ctx context.Context, postID, imageURL string) error {
	query := `UPDATE posts SET image_url = $1 WHERE post_id = $2`

	result, err := r.db.ExecContext(ctx, query, imageURL, postID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении изображения поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", postID, models.ErrNotFound)
	}

	return nil
}
