package models

import "errors"

// Ошибки уровня домена. Репозитории и сервисы оборачивают их через %w,
// хендлеры разбирают через errors.Is и отображают в HTTP-статусы.
var (
	// ErrNotFound покрывает и несуществующие записи, и записи, скрытые
	// политикой видимости: наружу они неотличимы.
	ErrNotFound = errors.New("запись не найдена")

	// ErrNotAuthor — чужой пост при редактировании: хендлер отвечает
	// редиректом на страницу поста, а не ошибкой.
	ErrNotAuthor = errors.New("пользователь не является автором")

	// ErrPermissionDenied — чужой пост при удалении: жёсткий 403.
	ErrPermissionDenied = errors.New("доступ запрещен")

	ErrAuthRequired = errors.New("требуется аутентификация")

	ErrUserExists = errors.New("пользователь уже существует")
)
