// Package policy содержит чистые предикаты видимости и прав на изменение.
// Время передаётся параметром, чтобы предикаты можно было тестировать
// без подмены глобальных часов.
package policy

import (
	"time"

	"blogicum/internal/models"
)

// VisibleInFeed — условия попадания поста в ленту и списки категорий:
// пост опубликован, дата публикации наступила, категория привязана и
// опубликована. Пост без категории в списки не попадает, но остаётся
// доступен по прямой ссылке и в профиле автора. Репозитории дублируют
// эти условия в WHERE, предикат используется в тестах и при поштучных
// проверках.
func VisibleInFeed(post *models.Post, now time.Time) bool {
	if !post.IsPublished {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	return post.CategoryIsPublished != nil && *post.CategoryIsPublished
}

// VisibleToViewer — ослабленное правило для страницы поста:
// автор видит всё своё, остальные — только is_published.
// pub_date и статус категории здесь сознательно не перепроверяются.
func VisibleToViewer(post *models.Post, viewerID string) bool {
	if viewerID != "" && viewerID == post.AuthorID {
		return true
	}
	return post.IsPublished
}

// CanModify — редактировать и удалять может только автор.
func CanModify(authorID, viewerID string) bool {
	return viewerID != "" && viewerID == authorID
}
