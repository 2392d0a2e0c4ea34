package service

import (
	"blogicum/internal/config"
	"blogicum/internal/repository"
	"blogicum/internal/storage"
)

type Service struct {
	User    UserService
	Post    PostService
	Comment CommentService
	Auth    AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:    NewUserService(rep.User, cfg),
		Post:    NewPostService(rep.Post, rep.Category, rep.Location, rep.User, rep.Comment, storage, cfg),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Auth:    NewAuthService(rep.User, cfg),
	}
}
