package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"blogicum/internal/config"
	"blogicum/internal/models"
	"blogicum/internal/policy"
	"blogicum/internal/repository"
	"blogicum/internal/storage"
)

type CreatePostRequest struct {
	AuthorID    string
	Title       string
	Text        string
	PubDate     time.Time
	LocationID  *string
	CategoryID  *string
	IsPublished bool
}

type UpdatePostRequest struct {
	PostID      string
	ViewerID    string
	Title       string
	Text        string
	PubDate     time.Time
	LocationID  *string
	CategoryID  *string
	IsPublished bool
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID, viewerID string) error
	GetPost(ctx context.Context, postID, viewerID string) (*models.Post, []models.Comment, error)
	Feed(ctx context.Context, page int) ([]models.Post, int, error)
	CategoryPosts(ctx context.Context, slug string, page int) (*models.Category, []models.Post, int, error)
	AuthorPosts(ctx context.Context, username string, page int) (*models.User, []models.Post, int, error)
	AttachImage(ctx context.Context, postID, viewerID, fileName string, file io.Reader, size int64) (string, error)
}

type postService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	commentRepo  repository.CommentRepository
	storage      storage.Storage
	cfg          *config.Config
	now          func() time.Time
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	storage storage.Storage,
	cfg *config.Config,
) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		storage:      storage,
		cfg:          cfg,
		now:          time.Now,
	}
}

// checkReferences проверяет, что привязываемые категория и местоположение
// существуют. Привязка — не публикация: снятые с публикации категория или
// место допустимы, пост просто не попадёт в ленту.
func (p *postService) checkReferences(ctx context.Context, categoryID, locationID *string) error {
	if categoryID != nil {
		if _, err := p.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			return err
		}
	}
	if locationID != nil {
		if _, err := p.locationRepo.GetByID(ctx, *locationID); err != nil {
			return err
		}
	}
	return nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if err := p.checkReferences(ctx, req.CategoryID, req.LocationID); err != nil {
		return nil, err
	}

	// pub_date в будущем — отложенная публикация, это допустимо
	post := &models.Post{
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		AuthorID:    req.AuthorID,
		LocationID:  req.LocationID,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost возвращает ErrNotAuthor для чужого поста: хендлер по этой
// ошибке делает редирект на страницу поста, а не отвечает 403.
func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if !policy.CanModify(post.AuthorID, req.ViewerID) {
		return nil, fmt.Errorf("пост %s: %w", req.PostID, models.ErrNotAuthor)
	}

	if err := p.checkReferences(ctx, req.CategoryID, req.LocationID); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Text = req.Text
	post.PubDate = req.PubDate
	post.LocationID = req.LocationID
	post.CategoryID = req.CategoryID
	post.IsPublished = req.IsPublished

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost возвращает ErrPermissionDenied для чужого поста — в отличие
// от редактирования это жёсткий 403. Комментарии удаляются каскадом в БД.
func (p *postService) DeletePost(ctx context.Context, postID, viewerID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !policy.CanModify(post.AuthorID, viewerID) {
		return fmt.Errorf("пост %s: %w", postID, models.ErrPermissionDenied)
	}

	return p.postRepo.Delete(ctx, postID)
}

// GetPost — страница поста. Невидимый для зрителя пост неотличим от
// несуществующего: и то и другое ErrNotFound. pub_date и статус категории
// на этой странице не перепроверяются.
func (p *postService) GetPost(ctx context.Context, postID, viewerID string) (*models.Post, []models.Comment, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	if !policy.VisibleToViewer(post, viewerID) {
		return nil, nil, fmt.Errorf("пост %s: %w", postID, models.ErrNotFound)
	}

	comments, err := p.commentRepo.GetByPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	return post, comments, nil
}

func (p *postService) pageBounds(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	limit = p.cfg.PageSize
	if limit < 1 {
		limit = 10
	}
	offset = (page - 1) * limit
	return limit, offset
}

func (p *postService) Feed(ctx context.Context, page int) ([]models.Post, int, error) {
	limit, offset := p.pageBounds(page)
	now := p.now()

	posts, err := p.postRepo.GetFeed(ctx, now, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := p.postRepo.CountFeed(ctx, now)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (p *postService) CategoryPosts(ctx context.Context, slug string, page int) (*models.Category, []models.Post, int, error) {
	category, err := p.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, 0, err
	}

	limit, offset := p.pageBounds(page)
	now := p.now()

	posts, err := p.postRepo.GetByCategory(ctx, category.CategoryID, now, limit, offset)
	if err != nil {
		return nil, nil, 0, err
	}

	total, err := p.postRepo.CountByCategory(ctx, category.CategoryID, now)
	if err != nil {
		return nil, nil, 0, err
	}

	return category, posts, total, nil
}

// AuthorPosts — страница профиля: все посты автора без фильтра по
// публикации, включая черновики и отложенные.
func (p *postService) AuthorPosts(ctx context.Context, username string, page int) (*models.User, []models.Post, int, error) {
	user, err := p.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}

	limit, offset := p.pageBounds(page)

	posts, err := p.postRepo.GetByAuthor(ctx, user.UserID, limit, offset)
	if err != nil {
		return nil, nil, 0, err
	}

	total, err := p.postRepo.CountByAuthor(ctx, user.UserID)
	if err != nil {
		return nil, nil, 0, err
	}

	return user, posts, total, nil
}

func (p *postService) AttachImage(ctx context.Context, postID, viewerID, fileName string, file io.Reader, size int64) (string, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	if !policy.CanModify(post.AuthorID, viewerID) {
		return "", fmt.Errorf("пост %s: %w", postID, models.ErrPermissionDenied)
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	if err := p.postRepo.SetImageURL(ctx, postID, imageURL); err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return "", err
	}

	return imageURL, nil
}
