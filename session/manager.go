// session/manager.go
package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName имя cookie с токеном сессии
const CookieName = "session_token"

// Session структура пользовательской сессии
type Session struct {
	Token     string
	UserID    int
	Username  string
	ExpiresAt time.Time
}

// Manager хранилище активных сессий в памяти
type Manager struct {
	sessions map[string]*Session
	ttl      time.Duration
	mutex    sync.RWMutex
}

// NewManager создает новое хранилище сессий
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create создает новую сессию для пользователя
func (m *Manager) Create(userID int, username string) *Session {
	s := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	m.mutex.Lock()
	m.sessions[s.Token] = s
	m.mutex.Unlock()

	return s
}

// Get возвращает сессию по токену или nil, если ее нет или она истекла
func (m *Manager) Get(token string) *Session {
	m.mutex.RLock()
	s, ok := m.sessions[token]
	m.mutex.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(s.ExpiresAt) {
		m.Delete(token)
		return nil
	}
	return s
}

// Delete удаляет сессию по токену
func (m *Manager) Delete(token string) {
	m.mutex.Lock()
	delete(m.sessions, token)
	m.mutex.Unlock()
}

// Count возвращает количество активных сессий
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// StartCleanup запускает периодическую очистку истекших сессий
func (m *Manager) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-stop:
			return
		}
	}
}

// removeExpired удаляет все истекшие сессии
func (m *Manager) removeExpired() {
	now := time.Now()

	m.mutex.Lock()
	removed := 0
	for token, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	m.mutex.Unlock()

	if removed > 0 {
		log.Printf("Удалено %d истекших сессий", removed)
	}
}
