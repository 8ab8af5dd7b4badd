// routes/responses.go
package routes

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/websocket"
)

// writeJSON кодирует ответ в JSON
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Ошибка при кодировании JSON: %v", err)
	}
}

// writeError отправляет сообщение об ошибке в формате JSON
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// ReportResponse ответ API с готовым отчетом
type ReportResponse struct {
	ReportID   int64  `json:"reportId"`
	TemplateID int    `json:"templateId"`
	Title      string `json:"title"`
	Parameters string `json:"parameters"`
	ReportHTML string `json:"reportHtml"`
}

// saveAndRespond сохраняет сгенерированный отчет, рассылает событие
// подключенным клиентам и возвращает отчет вызывающему
func saveAndRespond(w http.ResponseWriter, db *sql.DB, notifier *websocket.Manager,
	templateID int, title, parameters, html string) {

	reportID, err := database.SaveReport(db, templateID, parameters, html)
	if err != nil {
		log.Printf("❌ Ошибка при сохранении отчета: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save report")
		return
	}

	if notifier != nil {
		notifier.NotifyReportGenerated(reportID, title, parameters)
	}

	log.Printf("✅ Сгенерирован отчет #%d (%s)", reportID, title)
	writeJSON(w, http.StatusOK, ReportResponse{
		ReportID:   reportID,
		TemplateID: templateID,
		Title:      title,
		Parameters: parameters,
		ReportHTML: html,
	})
}
