package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) decodeCommentRequest(w http.ResponseWriter, r *http.Request) (*commentRequest, bool) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return nil, false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

// CreateComment - пост и автор комментария подставляются на сервере.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	req, ok := h.decodeCommentRequest(w, r)
	if !ok {
		return
	}

	authorID := r.Context().Value("userID").(string)

	_, err := h.CommentService.AddComment(r.Context(), postID, authorID, req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%s", postID), http.StatusFound)
}

// UpdateComment - чужой комментарий получает 404, а не 403: выборка
// заранее сужена до комментариев текущего пользователя.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]

	req, ok := h.decodeCommentRequest(w, r)
	if !ok {
		return
	}

	authorID := r.Context().Value("userID").(string)

	comment, err := h.CommentService.EditComment(r.Context(), commentID, authorID, req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%s", comment.PostID), http.StatusFound)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]
	authorID := r.Context().Value("userID").(string)

	postID, err := h.CommentService.DeleteComment(r.Context(), commentID, authorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%s", postID), http.StatusFound)
}
