package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"blogicum/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, newPassword string) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type CategoryRepository interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	ListPublished(ctx context.Context) ([]models.Category, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, locationID string) (*models.Location, error)
	ListPublished(ctx context.Context) ([]models.Location, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetFeed(ctx context.Context, now time.Time, limit, offset int) ([]models.Post, error)
	CountFeed(ctx context.Context, now time.Time) (int, error)
	GetByCategory(ctx context.Context, categoryID string, now time.Time, limit, offset int) ([]models.Post, error)
	CountByCategory(ctx context.Context, categoryID string, now time.Time) (int, error)
	GetByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	SetImageURL(ctx context.Context, postID, imageURL string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPost(ctx context.Context, postID string) ([]models.Comment, error)
	GetByIDForAuthor(ctx context.Context, commentID, authorID string) (*models.Comment, error)
	Update(ctx context.Context, commentID, authorID, text string) error
	Delete(ctx context.Context, commentID, authorID string) error
	CountByPost(ctx context.Context, postID string) (int, error)
}

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Location LocationRepository
	Post     PostRepository
	Comment  CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Location: NewLocationRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
	}
}
