package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogicum/internal/models"
)

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{db: db}
}

// GetPublishedBySlug — категория снятая с публикации для страниц категорий
// не существует, поэтому условие is_published вшито прямо в запрос.
func (r *CategoryRepositoryImpl) GetPublishedBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT * FROM categories WHERE slug = $1 AND is_published = TRUE`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("категория %s: %w", slug, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `SELECT * FROM categories WHERE category_id = $1`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("категория %s: %w", categoryID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) ListPublished(ctx context.Context) ([]models.Category, error) {
	query := `SELECT * FROM categories WHERE is_published = TRUE ORDER BY title`

	var categories []models.Category
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий: %w", err)
	}

	return categories, nil
}
