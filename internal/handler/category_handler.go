package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"blogicum/internal/models"
)

type CategoryPostsResponse struct {
	Category   models.Category    `json:"category"`
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

// CategoryPosts - посты одной категории. Неопубликованная категория
// неотличима от несуществующей: и то и другое 404.
func (h *Handlers) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	page := pageParam(r)

	category, posts, total, err := h.PostService.CategoryPosts(r.Context(), slug, page)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, CategoryPostsResponse{
		Category:   *category,
		Posts:      posts,
		Pagination: h.paginate(page, total),
	}, http.StatusOK)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.ListPublished(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	WriteSuccess(w, map[string]interface{}{"categories": categories}, http.StatusOK)
}
