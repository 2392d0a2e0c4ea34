package service

import (
	"context"

	"blogicum/internal/models"
	"blogicum/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error)
	EditComment(ctx context.Context, commentID, authorID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, authorID string) (string, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment — пост и автор подставляются на сервере, клиент передаёт
// только текст. Несуществующий пост — ErrNotFound из репозитория.
func (s *commentService) AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: authorID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// EditComment работает только по своим комментариям: выборка сразу сужена
// до author_id, чужой комментарий даёт ErrNotFound, а не ошибку прав.
func (s *commentService) EditComment(ctx context.Context, commentID, authorID, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByIDForAuthor(ctx, commentID, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Update(ctx, commentID, authorID, text); err != nil {
		return nil, err
	}

	comment.Text = text
	return comment, nil
}

// DeleteComment возвращает postID удалённого комментария для редиректа
// на страницу поста.
func (s *commentService) DeleteComment(ctx context.Context, commentID, authorID string) (string, error) {
	comment, err := s.commentRepo.GetByIDForAuthor(ctx, commentID, authorID)
	if err != nil {
		return "", err
	}

	if err := s.commentRepo.Delete(ctx, commentID, authorID); err != nil {
		return "", err
	}

	return comment.PostID, nil
}
