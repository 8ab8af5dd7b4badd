// routes/report_handlers.go
package routes

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/gorilla/mux"
)

// ListReportsHandler возвращает список сгенерированных отчетов
func ListReportsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportsList, err := database.ListReports(db)
		if err != nil {
			log.Printf("❌ Ошибка при запросе списка отчетов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to list reports")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reportsList})
	}
}

// GetReportHandler возвращает отчет с содержимым по идентификатору
func GetReportHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid report id")
			return
		}

		report, err := database.GetReportByID(db, id)
		if err != nil {
			log.Printf("❌ Ошибка при запросе отчета: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load report")
			return
		}
		if report == nil {
			writeError(w, http.StatusNotFound, "The report does not exist.")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// ListTemplatesHandler возвращает все шаблоны отчетов
func ListTemplatesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := database.ListTemplates(db)
		if err != nil {
			log.Printf("❌ Ошибка при запросе шаблонов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to list templates")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
	}
}

// UpdateTemplateHandler обновляет шаблон отчета
func UpdateTemplateHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid template id")
			return
		}

		template, err := database.GetTemplateByID(db, id)
		if err != nil {
			log.Printf("❌ Ошибка при запросе шаблона: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load template")
			return
		}
		if template == nil {
			writeError(w, http.StatusNotFound, "The template does not exist.")
			return
		}

		name := r.FormValue("name")
		topic := r.FormValue("topic")
		description := r.FormValue("description")
		contentHTML := r.FormValue("content_html")
		active := r.FormValue("active") != ""

		// Проверяем обязательные поля
		if name == "" || topic == "" || contentHTML == "" {
			writeError(w, http.StatusBadRequest,
				"Names, identifiers, and HTML content cannot be empty")
			return
		}

		if err := database.UpdateTemplate(db, id, name, topic, description, contentHTML, active); err != nil {
			log.Printf("❌ Ошибка при обновлении шаблона: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to update template")
			return
		}

		log.Printf("✅ Обновлен шаблон отчета #%d (%s)", id, name)
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "The template has been modified successfully.",
		})
	}
}
