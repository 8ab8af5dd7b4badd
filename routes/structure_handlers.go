// routes/structure_handlers.go
package routes

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/reports"
	"github.com/LilVoxy/coursework_movies/websocket"
)

// LanguageStatsResponse ответ API со статистикой по языкам и отчетом
type LanguageStatsResponse struct {
	Stats      []database.LanguageStat `json:"stats"`
	ReportHTML string                  `json:"reportHtml"`
}

// LanguageStatsHandler возвращает разбивку датасета по языкам оригинала
// вместе с готовым отчетом
func LanguageStatsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.GetLanguageStats(db)
		if err != nil {
			log.Printf("❌ Ошибка при запросе статистики языков: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute language statistics")
			return
		}

		_, html, err := reports.Render(db, database.TopicLanguageStructure, reports.Values{
			"language_count": len(stats),
			"language_stats": reports.LanguageLines(stats),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, LanguageStatsResponse{Stats: stats, ReportHTML: html})
	}
}

// PeriodStatsHandler генерирует отчет о результатах фильмов
// за выбранное временное окно
func PeriodStatsHandler(db *sql.DB, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.FormValue("start_date")
		endDate := r.FormValue("end_date")
		nStr := r.FormValue("n")
		if nStr == "" {
			nStr = "10"
		}

		if startDate == "" || endDate == "" {
			writeError(w, http.StatusBadRequest, "Please enter the complete date range")
			return
		}

		n, err := strconv.Atoi(nStr)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid Top N")
			return
		}

		filter := database.TimeFilter{Type: "range", StartDate: startDate, EndDate: endDate}

		summary, err := database.GetSummary(db, filter)
		if err != nil {
			log.Printf("❌ Ошибка при расчете статистики: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute statistics")
			return
		}
		if summary.MovieCount == 0 {
			writeError(w, http.StatusNotFound, "There is no movie data during this period")
			return
		}

		movies, err := database.GetTopByPopularity(db, filter, n)
		if err != nil {
			log.Printf("❌ Ошибка при запросе топа фильмов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to query movies")
			return
		}

		templateID, html, err := reports.Render(db, database.TopicTimeWindowPerformance, reports.Values{
			"start_date":     startDate,
			"end_date":       endDate,
			"movie_count":    summary.MovieCount,
			"avg_rating":     summary.AvgRating,
			"avg_popularity": summary.AvgPopularity,
			"n":              len(movies),
			"top_n_list":     reports.PeriodLines(movies),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		params := fmt.Sprintf("period_stats | %s to %s | N=%d", startDate, endDate, n)
		saveAndRespond(w, db, notifier, templateID, "Time Window Performance", params, html)
	}
}
