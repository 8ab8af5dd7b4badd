// websocket/manager.go
package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// NewManager создает новый менеджер WebSocket-соединений
func NewManager() *Manager {
	return &Manager{
		// Буфер позволяет не терять события, пока Run обрабатывает предыдущее
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[string]*Client),
	}
}

// Run запускает работу менеджера
func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.Register:
			manager.mutex.Lock()
			manager.Clients[client.ID] = client
			manager.mutex.Unlock()
			log.Printf("👤 Клиент %s подключился к ленте событий", client.ID)

		case client := <-manager.Unregister:
			manager.mutex.Lock()
			if _, ok := manager.Clients[client.ID]; ok {
				delete(manager.Clients, client.ID)
				close(client.Send)
				log.Printf("👤 Клиент %s отключился от ленты событий", client.ID)
			}
			manager.mutex.Unlock()

		case message := <-manager.Broadcast:
			manager.broadcast(message)
		}
	}
}

// broadcast отправляет сообщение всем подключенным клиентам
func (manager *Manager) broadcast(message []byte) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	for _, client := range manager.Clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(manager.Clients, client.ID)
		}
	}
}

// notify сериализует событие и ставит его в очередь рассылки
func (manager *Manager) notify(event Event) {
	event.Timestamp = time.Now().Format(time.RFC3339)

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Ошибка при кодировании события: %v", err)
		return
	}

	// Не блокируем вызывающий код, если менеджер не запущен
	select {
	case manager.Broadcast <- data:
	default:
	}
}

// NotifyReportGenerated рассылает событие о сгенерированном отчете
func (manager *Manager) NotifyReportGenerated(reportID int64, templateName, parameters string) {
	manager.notify(Event{
		Type:         EventReportGenerated,
		ReportID:     reportID,
		TemplateName: templateName,
		Parameters:   parameters,
	})
}

// NotifyImportCompleted рассылает событие о завершении импорта данных
func (manager *Manager) NotifyImportCompleted(imported int, mode string) {
	manager.notify(Event{
		Type:     EventImportCompleted,
		Imported: imported,
		Mode:     mode,
	})
}
