// routes/hot_handlers.go
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

// parseTimeFilter разбирает параметры временного фильтра из формы.
// Некорректные значения года или дат приводят к фильтру "all".
func parseTimeFilter(r *http.Request) database.TimeFilter {
	timeType := r.FormValue("time_type")
	year := r.FormValue("year")
	startDate := r.FormValue("start_date")
	endDate := r.FormValue("end_date")

	switch timeType {
	case "year":
		if y, err := strconv.Atoi(year); err == nil {
			return database.TimeFilter{Type: "year", Year: y}
		}
	case "range":
		if len(startDate) == 10 && len(endDate) == 10 {
			return database.TimeFilter{Type: "range", StartDate: startDate, EndDate: endDate}
		}
	}
	return database.TimeFilter{Type: "all"}
}

// HotTopNHandler генерирует отчет о топ-N популярных фильмах
// за выбранный период
func HotTopNHandler(db *sql.DB, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nStr := r.FormValue("n")
		if nStr == "" {
			nStr = "10"
		}

		n, err := strconv.Atoi(nStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid N.")
			return
		}
		if n <= 0 {
			writeError(w, http.StatusBadRequest, "N must be > 0.")
			return
		}

		filter := parseTimeFilter(r)

		summary, err := database.GetSummary(db, filter)
		if err != nil {
			log.Printf("❌ Ошибка при расчете статистики: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute statistics")
			return
		}
		if summary.MovieCount == 0 {
			writeError(w, http.StatusNotFound, "No movies found for selected range.")
			return
		}

		movies, err := database.GetTopByPopularity(db, filter, n)
		if err != nil {
			log.Printf("❌ Ошибка при запросе топа фильмов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to query movies")
			return
		}

		timeDesc := filter.Describe()
		templateID, html, err := reports.Render(db, database.TopicTopNPopular, reports.Values{
			"n":              len(movies),
			"time_desc":      timeDesc,
			"total_movies":   summary.MovieCount,
			"avg_rating":     summary.AvgRating,
			"avg_popularity": summary.AvgPopularity,
			"movie_list":     reports.PopularityLines(movies),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		params := fmt.Sprintf("hot_topn | %s | N=%d", timeDesc, n)
		saveAndRespond(w, db, notifier, templateID, "Hot Movies Top N", params, html)
	}
}

// YearHotHandler генерирует сводный отчет о горячих фильмах за год
func YearHotHandler(db *sql.DB, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		yearStr := r.FormValue("year")
		nStr := r.FormValue("n")
		if nStr == "" {
			nStr = "10"
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil || year <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid year.")
			return
		}

		n, err := strconv.Atoi(nStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid N.")
			return
		}
		if n <= 0 {
			writeError(w, http.StatusBadRequest, "N must be > 0.")
			return
		}

		filter := database.TimeFilter{Type: "year", Year: year}

		summary, err := database.GetSummary(db, filter)
		if err != nil {
			log.Printf("❌ Ошибка при расчете статистики: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute statistics")
			return
		}
		if summary.MovieCount == 0 {
			writeError(w, http.StatusNotFound, "No movies found for this year.")
			return
		}

		movies, err := database.GetTopByPopularity(db, filter, n)
		if err != nil {
			log.Printf("❌ Ошибка при запросе топа фильмов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to query movies")
			return
		}

		templateID, html, err := reports.Render(db, database.TopicYearTopPopularity, reports.Values{
			"year":           year,
			"movie_count":    summary.MovieCount,
			"avg_rating":     summary.AvgRating,
			"avg_popularity": summary.AvgPopularity,
			"n":              len(movies),
			"top_n_list":     reports.PopularityLines(movies),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		params := fmt.Sprintf("year_hot | year=%d | N=%d", year, n)
		saveAndRespond(w, db, notifier, templateID, "Yearly Hot Movies Summary", params, html)
	}
}
