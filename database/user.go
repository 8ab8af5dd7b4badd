// database/user.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// User структура пользователя системы
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Email        *string `json:"email,omitempty"`
	IsAdmin      bool    `json:"isAdmin"`
}

// ErrUsernameTaken возвращается при попытке зарегистрировать занятое имя
var ErrUsernameTaken = fmt.Errorf("имя пользователя уже существует")

// CreateUser создает нового пользователя
func CreateUser(db *sql.DB, username, passwordHash string) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash)
	if err != nil {
		// Нарушение уникальности имени пользователя
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}
	return result.LastInsertId()
}

// GetUserByUsername возвращает пользователя по имени или nil, если его нет
func GetUserByUsername(db *sql.DB, username string) (*User, error) {
	var u User
	var isAdmin int
	err := db.QueryRow(
		"SELECT id, username, password_hash, email, is_admin FROM users WHERE username = ?",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &isAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе пользователя: %w", err)
	}
	u.IsAdmin = isAdmin != 0
	return &u, nil
}
