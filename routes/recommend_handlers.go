// routes/recommend_handlers.go
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

// floatOrDefault разбирает число из формы, подставляя значение по умолчанию
func floatOrDefault(value string, def float64) float64 {
	if value == "" {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return f
}

// intOrDefault разбирает целое число из формы, подставляя значение по умолчанию
func intOrDefault(value string, def int) int {
	if value == "" {
		return def
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return i
}

// HighScoreHandler генерирует рекомендательный отчет
// о фильмах с высоким рейтингом
func HighScoreHandler(db *sql.DB, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minRating := floatOrDefault(r.FormValue("min_rating"), 8.0)
		minVotes := intOrDefault(r.FormValue("min_votes"), 50)
		lang := r.FormValue("lang")

		languageDesc := "All languages"
		if lang != "" {
			languageDesc = fmt.Sprintf("Only '%s'", lang)
		}

		movies, summary, err := database.GetRatedMovies(db, minRating, minVotes, lang)
		if err != nil {
			log.Printf("❌ Ошибка при запросе рекомендаций: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to query movies")
			return
		}
		if summary.MovieCount == 0 {
			writeError(w, http.StatusNotFound, "No movies match the filters.")
			return
		}

		templateID, html, err := reports.Render(db, database.TopicHighScoreRecommend, reports.Values{
			"min_rating":    minRating,
			"min_votes":     minVotes,
			"language_desc": languageDesc,
			"movie_count":   summary.MovieCount,
			"avg_rating":    summary.AvgRating,
			"movie_list":    reports.RatingLines(movies),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		params := fmt.Sprintf("high_rated | min_rating=%g | min_votes=%d | lang=%s",
			minRating, minVotes, lang)
		saveAndRespond(w, db, notifier, templateID, "High-Score Recommendation", params, html)
	}
}

// HiddenGemsHandler генерирует отчет о потенциальных скрытых жемчужинах:
// фильмах с высоким рейтингом, но низкой популярностью
func HiddenGemsHandler(db *sql.DB, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minRating := floatOrDefault(r.FormValue("min_rating"), 8.0)
		maxPopularity := floatOrDefault(r.FormValue("max_popularity"), 200.0)

		movies, summary, err := database.GetHiddenGems(db, minRating, maxPopularity)
		if err != nil {
			log.Printf("❌ Ошибка при запросе скрытых жемчужин: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to query movies")
			return
		}
		if summary.MovieCount == 0 {
			writeError(w, http.StatusNotFound,
				"Under the current conditions, no potential films have been found")
			return
		}

		templateID, html, err := reports.Render(db, database.TopicHiddenGems, reports.Values{
			"min_rating":     minRating,
			"max_popularity": maxPopularity,
			"movie_count":    summary.MovieCount,
			"movie_list":     reports.RatingLines(movies),
		})
		if err != nil {
			log.Printf("❌ Ошибка при генерации отчета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		params := fmt.Sprintf("hidden_gems | rating>=%g | pop<=%g", minRating, maxPopularity)
		saveAndRespond(w, db, notifier, templateID, "Potential Hidden Gems", params, html)
	}
}

// MovieSearchResponse ответ API поиска фильмов
type MovieSearchResponse struct {
	Movies []database.Movie      `json:"movies"`
	Stats  *database.SearchStats `json:"stats"`
}

// MovieSearchHandler выполняет поиск фильмов по набору фильтров
func MovieSearchHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.SearchFilter{
			TitleKeyword:  r.FormValue("title_keyword"),
			Language:      r.FormValue("language"),
			ReleaseYear:   r.FormValue("release_year"),
			MinRating:     floatOrDefault(r.FormValue("min_rating"), 0),
			MaxRating:     floatOrDefault(r.FormValue("max_rating"), 10),
			MinPopularity: floatOrDefault(r.FormValue("min_popularity"), 0),
			Limit:         intOrDefault(r.FormValue("limit"), 20),
		}

		movies, stats, err := database.SearchMovies(db, filter)
		if err != nil {
			log.Printf("❌ Ошибка при поиске фильмов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to search movies")
			return
		}

		log.Printf("✅ Поиск фильмов вернул %d записей", len(movies))
		writeJSON(w, http.StatusOK, MovieSearchResponse{Movies: movies, Stats: stats})
	}
}
