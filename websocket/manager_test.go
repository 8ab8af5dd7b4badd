// websocket/manager_test.go
package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainEvent читает одно событие из очереди рассылки без блокировки
func drainEvent(t *testing.T, manager *Manager) *Event {
	t.Helper()

	select {
	case data := <-manager.Broadcast:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return &event
	default:
		return nil
	}
}

func TestNotifyQueuesEvents(t *testing.T) {
	manager := NewManager()

	// События ставятся в очередь даже до запуска Run
	manager.NotifyReportGenerated(7, "Yearly Hot Summary", "year=2024")
	manager.NotifyImportCompleted(120, "replace")

	event := drainEvent(t, manager)
	require.NotNil(t, event)
	assert.Equal(t, EventReportGenerated, event.Type)
	assert.Equal(t, int64(7), event.ReportID)
	assert.Equal(t, "Yearly Hot Summary", event.TemplateName)
	assert.NotEmpty(t, event.Timestamp)

	event = drainEvent(t, manager)
	require.NotNil(t, event)
	assert.Equal(t, EventImportCompleted, event.Type)
	assert.Equal(t, 120, event.Imported)
	assert.Equal(t, "replace", event.Mode)

	// Очередь пуста после выборки обоих событий
	assert.Nil(t, drainEvent(t, manager))
}

func TestNotifyDoesNotBlockWhenQueueFull(t *testing.T) {
	manager := NewManager()

	// Переполнение очереди не должно блокировать вызывающий код
	for i := 0; i < cap(manager.Broadcast)+5; i++ {
		manager.NotifyReportGenerated(int64(i), "Report", "p")
	}

	assert.Len(t, manager.Broadcast, cap(manager.Broadcast))
}
