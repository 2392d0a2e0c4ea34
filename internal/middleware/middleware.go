package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"blogicum/internal/config"
	handlers "blogicum/internal/handler"
	"blogicum/internal/models"
)

type Middleware func(http.Handler) http.Handler

func parseBearerToken(r *http.Request, cfg *config.Config) (jwt.MapClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("отсутствует заголовок Authorization")
	}

	// Checking the "Bearer <token>" format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("неверный формат токена")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("недействительный токен: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверные claims токена")
	}

	return claims, nil
}

func contextWithClaims(ctx context.Context, claims jwt.MapClaims) (context.Context, error) {
	userID, ok1 := claims["userId"].(string)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 {
		return ctx, fmt.Errorf("неверные данные в токене")
	}

	ctx = context.WithValue(ctx, "userID", userID)
	ctx = context.WithValue(ctx, "username", username)
	return ctx, nil
}

// RequireAuth пускает дальше только аутентифицированных: без валидного
// токена — 401. Вешается на мутирующие маршруты.
func RequireAuth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseBearerToken(r, cfg)
			if err != nil {
				handlers.WriteError(w, models.ErrAuthRequired.Error(), http.StatusUnauthorized)
				return
			}

			ctx, err := contextWithClaims(r.Context(), claims)
			if err != nil {
				handlers.WriteError(w, models.ErrAuthRequired.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth разбирает токен, если он есть, но анонимов не отбрасывает.
// Нужен страницам чтения: автор должен видеть свои неопубликованные посты.
func OptionalAuth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseBearerToken(r, cfg)
			if err == nil {
				if ctx, err := contextWithClaims(r.Context(), claims); err == nil {
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
