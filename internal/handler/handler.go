package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogicum/internal/config"
	"blogicum/internal/repository"
	"blogicum/internal/service"
)

type Handlers struct {
	PostService    service.PostService
	CommentService service.CommentService
	UserService    service.UserService
	AuthService    service.AuthService
	CategoryRepo   repository.CategoryRepository
	LocationRepo   repository.LocationRepository
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:    service.Post,
		CommentService: service.Comment,
		UserService:    service.User,
		AuthService:    service.Auth,
		CategoryRepo:   repo.Category,
		LocationRepo:   repo.Location,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
