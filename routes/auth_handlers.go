// routes/auth_handlers.go
package routes

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/session"
)

// HashPassword возвращает sha256-хеш пароля в шестнадцатеричном виде
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// RegisterHandler обрабатывает регистрацию нового пользователя
func RegisterHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		password := r.FormValue("password")
		confirm := r.FormValue("confirm")

		// Проверяем обязательные поля
		if username == "" || password == "" {
			writeError(w, http.StatusBadRequest, "The username and password cannot be empty")
			return
		}

		if password != confirm {
			writeError(w, http.StatusBadRequest, "The two password entries are inconsistent")
			return
		}

		userID, err := database.CreateUser(db, username, HashPassword(password))
		if err != nil {
			if errors.Is(err, database.ErrUsernameTaken) {
				writeError(w, http.StatusConflict, "The username already exists")
				return
			}
			log.Printf("❌ Ошибка при регистрации пользователя: %v", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		log.Printf("✅ Зарегистрирован пользователь %s (id=%d)", username, userID)
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Registration successful. Please log in",
		})
	}
}

// LoginHandler обрабатывает вход пользователя и выдает сессию
func LoginHandler(db *sql.DB, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		password := r.FormValue("password")

		user, err := database.GetUserByUsername(db, username)
		if err != nil {
			log.Printf("❌ Ошибка при запросе пользователя: %v", err)
			writeError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		// Сравниваем хеши паролей
		if user == nil || HashPassword(password) != user.PasswordHash {
			writeError(w, http.StatusUnauthorized, "The username or password is incorrect")
			return
		}

		s := sessions.Create(user.ID, user.Username)

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    s.Token,
			Path:     "/",
			Expires:  s.ExpiresAt,
			HttpOnly: true,
		})

		log.Printf("✅ Пользователь %s вошел в систему", username)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "Logged in successfully",
			"username": user.Username,
			"userId":   user.ID,
		})
	}
}

// LogoutHandler завершает сессию пользователя
func LogoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err == nil {
			sessions.Delete(cookie.Value)
		}

		// Сбрасываем cookie на клиенте
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
		})

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Logged out successfully",
		})
	}
}
