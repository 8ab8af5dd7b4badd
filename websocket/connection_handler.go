// websocket/connection_handler.go
package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

// HandleConnections обрабатывает новые WebSocket-подключения к ленте событий
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Ошибка при обновлении соединения до WebSocket: %v", err)
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		Socket: conn,
		Send:   make(chan []byte, 16),
	}

	manager.Register <- client

	// Запускаем насосы чтения и записи
	go client.writePump()
	go client.readPump(manager)
}
