package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"blogicum/internal/models"
	"blogicum/internal/service"
)

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PostListResponse struct {
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type PostDetailResponse struct {
	Post         models.Post      `json:"post"`
	Comments     []models.Comment `json:"comments"`
	CommentCount int              `json:"commentCount"`
}

type postRequest struct {
	Title       string    `json:"title" validate:"required,max=256"`
	Text        string    `json:"text" validate:"required"`
	PubDate     time.Time `json:"pubDate" validate:"required"`
	LocationID  *string   `json:"locationId"`
	CategoryID  *string   `json:"categoryId"`
	IsPublished *bool     `json:"isPublished"`
}

func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

func (h *Handlers) paginate(page, total int) PaginationResponse {
	limit := h.Cfg.PageSize
	if limit < 1 {
		limit = 10
	}
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

// Index - главная лента: опубликованные посты с наступившей датой
// публикации в опубликованных категориях.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	posts, total, err := h.PostService.Feed(r.Context(), page)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, PostListResponse{
		Posts:      posts,
		Pagination: h.paginate(page, total),
	}, http.StatusOK)
}

// GetPost - страница поста с комментариями. Невидимый пост отвечает 404,
// чтобы не выдавать существование неопубликованного.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	viewerID, _ := r.Context().Value("userID").(string)

	post, comments, err := h.PostService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, PostDetailResponse{
		Post:         *post,
		Comments:     comments,
		CommentCount: post.CommentCount,
	}, http.StatusOK)
}

func (h *Handlers) decodePostRequest(w http.ResponseWriter, r *http.Request) (*postRequest, bool) {
	var req postRequest
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

// CreatePost - автор принудительно текущий пользователь, что бы ни пришло
// в теле. После создания — редирект в профиль автора.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePostRequest(w, r)
	if !ok {
		return
	}

	authorID := r.Context().Value("userID").(string)
	username, _ := r.Context().Value("username").(string)

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	_, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID:    authorID,
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		LocationID:  req.LocationID,
		CategoryID:  req.CategoryID,
		IsPublished: isPublished,
	})
	if err != nil {
		// несуществующая категория или местоположение — ошибка данных формы
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Указанная категория или местоположение не существует", http.StatusBadRequest)
			return
		}
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s", username), http.StatusFound)
}

// UpdatePost - чужой пост не даёт 403: вместо этого редирект на страницу
// поста. Асимметрия с удалением сохранена намеренно.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	req, ok := h.decodePostRequest(w, r)
	if !ok {
		return
	}

	viewerID := r.Context().Value("userID").(string)

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	_, err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:      postID,
		ViewerID:    viewerID,
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		LocationID:  req.LocationID,
		CategoryID:  req.CategoryID,
		IsPublished: isPublished,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotAuthor) {
			http.Redirect(w, r, fmt.Sprintf("/posts/%s", postID), http.StatusFound)
			return
		}
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%s", postID), http.StatusFound)
}

// DeletePost - в отличие от редактирования чужой пост здесь отвечает 403.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	viewerID := r.Context().Value("userID").(string)

	if err := h.PostService.DeletePost(r.Context(), postID, viewerID); err != nil {
		writeDomainError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

type ImageResponse struct {
	PostID   string `json:"postId"`
	ImageURL string `json:"imageUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

// AttachImage - загрузка изображения поста в MinIO, только для автора.
func (h *Handlers) AttachImage(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	viewerID := r.Context().Value("userID").(string)

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	imageURL, err := h.PostService.AttachImage(r.Context(), postID, viewerID, header.Filename, file, header.Size)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, ImageResponse{
		PostID:   postID,
		ImageURL: imageURL,
		FileName: header.Filename,
		FileSize: header.Size,
		MimeType: contentType,
	}, http.StatusCreated)
}
