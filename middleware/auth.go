// middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/LilVoxy/coursework_movies/session"
)

type contextKey string

// SessionContextKey ключ, под которым сессия хранится в контексте запроса
const SessionContextKey contextKey = "session"

// RequireAuth оборачивает обработчик проверкой сессии пользователя.
// Запросы без действующей сессии получают 401.
func RequireAuth(sessions *session.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			unauthorized(w)
			return
		}

		s := sessions.Get(cookie.Value)
		if s == nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, s)
		next(w, r.WithContext(ctx))
	}
}

// SessionFromContext возвращает сессию текущего запроса или nil
func SessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(SessionContextKey).(*session.Session)
	return s
}

// unauthorized отправляет ответ 401 в формате JSON
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "Please log in first to access this page",
	})
}
