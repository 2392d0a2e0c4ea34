package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogicum/cmd/app"
	"blogicum/internal/config"
	handlers "blogicum/internal/handler"
	"blogicum/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// auth endpoints
	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// чтение открыто всем; токен разбирается, если прислан,
	// чтобы автор видел свои неопубликованные посты
	public := router.NewRoute().Subrouter()
	public.Use(mux.MiddlewareFunc(middleware.OptionalAuth(cfg)))
	public.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	public.HandleFunc("/posts/{post_id}", handler.GetPost).Methods(http.MethodGet)
	public.HandleFunc("/category/{slug}", handler.CategoryPosts).Methods(http.MethodGet)
	public.HandleFunc("/categories", handler.ListCategories).Methods(http.MethodGet)
	public.HandleFunc("/locations", handler.ListLocations).Methods(http.MethodGet)
	public.HandleFunc("/profile/{username}", handler.Profile).Methods(http.MethodGet)

	// запись только для аутентифицированных
	authed := router.NewRoute().Subrouter()
	authed.Use(mux.MiddlewareFunc(middleware.RequireAuth(cfg)))
	authed.HandleFunc("/posts/new", handler.CreatePost).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{post_id}/edit", handler.UpdatePost).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{post_id}/delete", handler.DeletePost).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{post_id}/image", handler.AttachImage).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{post_id}/comment", handler.CreateComment).Methods(http.MethodPost)
	authed.HandleFunc("/comments/{comment_id}/edit", handler.UpdateComment).Methods(http.MethodPost)
	authed.HandleFunc("/comments/{comment_id}/delete", handler.DeleteComment).Methods(http.MethodPost)
	authed.HandleFunc("/profile/{username}/edit", handler.UpdateProfile).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
