// routes/overview_handlers.go
package routes

import (
	"database/sql"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/LilVoxy/coursework_movies/database"
)

// GetOverviewHandler возвращает общую сводку по датасету
func GetOverviewHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.GetOverviewStats(db)
		if err != nil {
			log.Printf("❌ Ошибка при расчете сводки: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute overview")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// HotDashboardResponse сводка для панели горячих фильмов
type HotDashboardResponse struct {
	TopMovieTitle string    `json:"topMovieTitle"`
	MaxPopularity float64   `json:"maxPopularity"`
	AvgRating     float64   `json:"avgRating"`
	MonthlyAvg    []float64 `json:"monthlyAvg"`
}

// GetHotDashboardHandler возвращает сводку по горячим фильмам:
// самый популярный фильм текущего года, исторический максимум популярности,
// средний рейтинг верхних 30% по популярности и помесячный тренд
func GetHotDashboardHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currentYear := time.Now().Year()

		topTitle, err := database.GetTopMovieOfYear(db, currentYear)
		if err != nil {
			log.Printf("❌ Ошибка при запросе фильма года: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute dashboard")
			return
		}
		if topTitle == "" {
			topTitle = "no data"
		}

		maxPop, err := database.GetMaxPopularity(db)
		if err != nil {
			log.Printf("❌ Ошибка при запросе максимальной популярности: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute dashboard")
			return
		}

		// Средний рейтинг считается только по верхним 30% фильмов по популярности
		threshold, err := database.GetPopularityThreshold(db)
		if err != nil {
			log.Printf("❌ Ошибка при расчете порога популярности: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute dashboard")
			return
		}

		avgRating, err := database.GetAvgRatingAbovePopularity(db, threshold)
		if err != nil {
			log.Printf("❌ Ошибка при расчете среднего рейтинга: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute dashboard")
			return
		}

		monthly, err := database.GetMonthlyAvgPopularity(db)
		if err != nil {
			log.Printf("❌ Ошибка при расчете помесячного тренда: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to compute dashboard")
			return
		}
		for i := range monthly {
			monthly[i] = math.Round(monthly[i]*10) / 10
		}

		writeJSON(w, http.StatusOK, HotDashboardResponse{
			TopMovieTitle: topTitle,
			MaxPopularity: math.Round(maxPop*10) / 10,
			AvgRating:     math.Round(avgRating*10) / 10,
			MonthlyAvg:    monthly,
		})
	}
}
