// session/manager_test.go
package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.Create(42, "alice")
	require.NotNil(t, s)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, 42, s.UserID)
	assert.Equal(t, "alice", s.Username)

	got := m.Get(s.Token)
	require.NotNil(t, got)
	assert.Equal(t, s.Token, got.Token)
	assert.Equal(t, 1, m.Count())
}

func TestGetUnknownToken(t *testing.T) {
	m := NewManager(time.Hour)
	assert.Nil(t, m.Get("no-such-token"))
}

func TestExpiredSessionRemoved(t *testing.T) {
	m := NewManager(-time.Minute)

	s := m.Create(1, "bob")
	// Истекшая сессия не возвращается и удаляется из хранилища
	assert.Nil(t, m.Get(s.Token))
	assert.Equal(t, 0, m.Count())
}

func TestDelete(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.Create(1, "alice")
	m.Delete(s.Token)
	assert.Nil(t, m.Get(s.Token))
	assert.Equal(t, 0, m.Count())
}

func TestTokensUnique(t *testing.T) {
	m := NewManager(time.Hour)

	s1 := m.Create(1, "alice")
	s2 := m.Create(1, "alice")
	assert.NotEqual(t, s1.Token, s2.Token)
	assert.Equal(t, 2, m.Count())
}

func TestRemoveExpiredKeepsAlive(t *testing.T) {
	m := NewManager(time.Hour)

	alive := m.Create(1, "alice")
	expired := m.Create(2, "bob")

	// Принудительно истекает одна из сессий
	m.mutex.Lock()
	m.sessions[expired.Token].ExpiresAt = time.Now().Add(-time.Minute)
	m.mutex.Unlock()

	m.removeExpired()

	assert.NotNil(t, m.Get(alive.Token))
	assert.Equal(t, 1, m.Count())
}
