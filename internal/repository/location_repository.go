package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogicum/internal/models"
)

type LocationRepositoryImpl struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) *LocationRepositoryImpl {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) GetByID(ctx context.Context, locationID string) (*models.Location, error) {
	query := `SELECT * FROM locations WHERE location_id = $1`

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, locationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("местоположение %s: %w", locationID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении местоположения: %w", err)
	}

	return &location, nil
}

func (r *LocationRepositoryImpl) ListPublished(ctx context.Context) ([]models.Location, error) {
	query := `SELECT * FROM locations WHERE is_published = TRUE ORDER BY name`

	var locations []models.Location
	err := r.db.SelectContext(ctx, &locations, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка местоположений: %w", err)
	}

	return locations, nil
}
