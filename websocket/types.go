// websocket/types.go
package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event структура события, рассылаемого подключенным клиентам
type Event struct {
	Type         string `json:"type"`
	ReportID     int64  `json:"reportId,omitempty"`
	TemplateName string `json:"templateName,omitempty"`
	Parameters   string `json:"parameters,omitempty"`
	Imported     int    `json:"imported,omitempty"`
	Mode         string `json:"mode,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// Типы событий
const (
	EventReportGenerated = "report_generated"
	EventImportCompleted = "import_completed"
)

// Клиент WebSocket
type Client struct {
	ID     string
	Socket *websocket.Conn
	Send   chan []byte
}

// Менеджер WebSocket-соединений
type Manager struct {
	Clients    map[string]*Client
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Разрешаем подключения с любого источника (для разработки)
	},
}
