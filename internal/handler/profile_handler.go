package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"blogicum/internal/models"
	"blogicum/internal/service"
)

type ProfileResponse struct {
	Profile    models.User        `json:"profile"`
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type updateProfileRequest struct {
	Username  string `json:"username" validate:"omitempty,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	FirstName string `json:"firstName" validate:"max=150"`
	LastName  string `json:"lastName" validate:"max=150"`
}

// Profile - все посты пользователя без фильтра по публикации:
// профиль показывает владельцу и черновики, и отложенные посты.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	page := pageParam(r)

	user, posts, total, err := h.PostService.AuthorPosts(r.Context(), username, page)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, ProfileResponse{
		Profile:    *user,
		Posts:      posts,
		Pagination: h.paginate(page, total),
	}, http.StatusOK)
}

// UpdateProfile - редактирование только собственного профиля; пароль
// write-only и уходит в БД уже хешем.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	viewerID := r.Context().Value("userID").(string)

	user, err := h.UserService.UpdateProfile(r.Context(), service.UpdateProfileRequest{
		ViewerID:    viewerID,
		Username:    username,
		NewUsername: req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", user.Username), http.StatusFound)
}
