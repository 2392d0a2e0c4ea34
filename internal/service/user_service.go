package service

import (
	"context"
	"fmt"

	"blogicum/internal/config"
	"blogicum/internal/models"
	"blogicum/internal/repository"
)

type UpdateProfileRequest struct {
	ViewerID    string
	Username    string // username из пути; должен совпадать с текущим пользователем
	NewUsername string
	Email       string
	Password    string // write-only; пустая строка — пароль не меняется
	FirstName   string
	LastName    string
}

type UserService interface {
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// UpdateProfile редактирует только собственный профиль. Попытка изменить
// чужой отвечает ErrNotFound, чтобы не подтверждать существование аккаунта.
func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.ViewerID)
	if err != nil {
		return nil, err
	}

	if user.Username != req.Username {
		return nil, fmt.Errorf("профиль %s: %w", req.Username, models.ErrNotFound)
	}

	if req.NewUsername != "" {
		user.Username = req.NewUsername
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.userRepo.UpdateProfile(ctx, user, req.Password); err != nil {
		return nil, err
	}

	return user, nil
}
