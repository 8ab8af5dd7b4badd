// database/hot_query.go
package database

import (
	"database/sql"
	"fmt"
)

// GetTopMovieOfYear возвращает название самого популярного фильма за указанный год
func GetTopMovieOfYear(db *sql.DB, year int) (string, error) {
	var title string
	err := db.QueryRow(`
		SELECT title
		FROM movies
		WHERE release_year = ?
		  AND popularity IS NOT NULL
		ORDER BY popularity DESC LIMIT 1;
	`, year).Scan(&title)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ошибка при запросе самого популярного фильма года: %w", err)
	}
	return title, nil
}

// GetMaxPopularity возвращает исторический максимум популярности
func GetMaxPopularity(db *sql.DB) (float64, error) {
	var maxPop sql.NullFloat64
	err := db.QueryRow("SELECT MAX(popularity) FROM movies WHERE popularity IS NOT NULL;").
		Scan(&maxPop)
	if err != nil {
		return 0, fmt.Errorf("ошибка при запросе максимальной популярности: %w", err)
	}
	return maxPop.Float64, nil
}

// GetPopularityThreshold возвращает значение популярности на уровне 70-го
// перцентиля. Фильмы выше этого порога считаются верхними 30% по популярности.
func GetPopularityThreshold(db *sql.DB) (float64, error) {
	var threshold sql.NullFloat64
	err := db.QueryRow(`
		WITH ranked_movies AS (
			SELECT popularity
			FROM movies
			WHERE popularity IS NOT NULL
			ORDER BY popularity ASC
		),
		total_count AS (
			SELECT COUNT(*) AS cnt FROM ranked_movies
		)
		SELECT popularity
		FROM ranked_movies, total_count
		LIMIT 1
		OFFSET (SELECT CASE WHEN cnt = 0 THEN 0 ELSE ROUND(cnt * 0.7) END FROM total_count);
	`).Scan(&threshold)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("ошибка при расчете порога популярности: %w", err)
	}
	return threshold.Float64, nil
}

// GetAvgRatingAbovePopularity возвращает средний рейтинг фильмов
// с популярностью выше заданного порога
func GetAvgRatingAbovePopularity(db *sql.DB, threshold float64) (float64, error) {
	var avgRating sql.NullFloat64
	err := db.QueryRow(`
		SELECT AVG(vote_average)
		FROM movies
		WHERE vote_average IS NOT NULL
		  AND popularity IS NOT NULL
		  AND popularity > ?;
	`, threshold).Scan(&avgRating)
	if err != nil {
		return 0, fmt.Errorf("ошибка при расчете среднего рейтинга популярных фильмов: %w", err)
	}
	return avgRating.Float64, nil
}

// GetMonthlyAvgPopularity возвращает среднюю популярность по календарным
// месяцам (12 значений, месяцы без данных получают 0)
func GetMonthlyAvgPopularity(db *sql.DB) ([]float64, error) {
	rows, err := db.Query(`
		SELECT strftime('%m', release_date) AS month, AVG(popularity) AS avg_pop
		FROM movies
		WHERE popularity IS NOT NULL
		  AND release_date IS NOT NULL
		GROUP BY month;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при расчете помесячной популярности: %w", err)
	}
	defer rows.Close()

	monthly := make([]float64, 12)
	for rows.Next() {
		var month sql.NullString
		var avgPop sql.NullFloat64
		if err := rows.Scan(&month, &avgPop); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании месячной статистики: %w", err)
		}
		if !month.Valid {
			continue
		}
		var index int
		if _, err := fmt.Sscanf(month.String, "%d", &index); err != nil || index < 1 || index > 12 {
			continue
		}
		monthly[index-1] = avgPop.Float64
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по месячной статистике: %w", err)
	}
	return monthly, nil
}
