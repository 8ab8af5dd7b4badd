// database/movie_query.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// TimeFilter ограничение по времени для статистических запросов
type TimeFilter struct {
	Type      string // "all", "year" или "range"
	Year      int
	StartDate string // формат YYYY-MM-DD
	EndDate   string
}

// Describe возвращает текстовое описание фильтра для отчетов
func (f TimeFilter) Describe() string {
	switch f.Type {
	case "year":
		return fmt.Sprintf("movies released in %d", f.Year)
	case "range":
		return fmt.Sprintf("movies released between %s and %s", f.StartDate, f.EndDate)
	default:
		return "all movies"
	}
}

// whereClause собирает SQL-условие для фильтра
func (f TimeFilter) whereClause() (string, []interface{}) {
	var where []string
	var params []interface{}

	switch f.Type {
	case "year":
		where = append(where, "release_year = ?")
		params = append(params, f.Year)
	case "range":
		where = append(where, "release_date >= ?", "release_date <= ?")
		params = append(params, f.StartDate, f.EndDate)
	}

	if len(where) == 0 {
		return "1=1", nil
	}
	return strings.Join(where, " AND "), params
}

// Summary сводная статистика по набору фильмов
type Summary struct {
	MovieCount    int     `json:"movieCount"`
	AvgRating     float64 `json:"avgRating"`
	AvgPopularity float64 `json:"avgPopularity"`
}

// GetSummary возвращает количество, средний рейтинг и среднюю популярность
// фильмов в пределах фильтра (учитываются только записи с заполненными метриками)
func GetSummary(db *sql.DB, f TimeFilter) (*Summary, error) {
	whereSQL, params := f.whereClause()

	query := fmt.Sprintf(`
		SELECT COUNT(*) AS cnt, AVG(vote_average) AS ar, AVG(popularity) AS ap
		FROM movies
		WHERE %s
		  AND popularity IS NOT NULL
		  AND vote_average IS NOT NULL;
	`, whereSQL)

	var s Summary
	var avgRating, avgPop sql.NullFloat64
	if err := db.QueryRow(query, params...).Scan(&s.MovieCount, &avgRating, &avgPop); err != nil {
		return nil, fmt.Errorf("ошибка при расчете сводной статистики: %w", err)
	}
	s.AvgRating = avgRating.Float64
	s.AvgPopularity = avgPop.Float64
	return &s, nil
}

// GetTopByPopularity возвращает топ-N фильмов по популярности в пределах фильтра
func GetTopByPopularity(db *sql.DB, f TimeFilter, n int) ([]Movie, error) {
	whereSQL, params := f.whereClause()

	query := fmt.Sprintf(`
		SELECT title, popularity, vote_average, release_date
		FROM movies
		WHERE %s
		  AND popularity IS NOT NULL
		ORDER BY popularity DESC
		LIMIT ?;
	`, whereSQL)

	rows, err := db.Query(query, append(append([]interface{}{}, params...), n)...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топа фильмов: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.Title, &m.Popularity, &m.VoteAverage, &m.ReleaseDate); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании фильма: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по фильмам: %w", err)
	}
	return movies, nil
}

// OverviewStats общая сводка по датасету
type OverviewStats struct {
	TotalMovies   int     `json:"totalMovies"`
	LanguageCount int     `json:"languageCount"`
	AvgRating     float64 `json:"avgRating"`
	AvgPopularity float64 `json:"avgPopularity"`
	Top5          []Movie `json:"top5"`
}

// GetOverviewStats возвращает общую сводку по датасету фильмов
func GetOverviewStats(db *sql.DB) (*OverviewStats, error) {
	var stats OverviewStats

	if err := db.QueryRow("SELECT COUNT(*) FROM movies;").Scan(&stats.TotalMovies); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете фильмов: %w", err)
	}

	if err := db.QueryRow("SELECT COUNT(DISTINCT original_language) FROM movies;").
		Scan(&stats.LanguageCount); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете языков: %w", err)
	}

	var avgRating, avgPop sql.NullFloat64
	err := db.QueryRow(`
		SELECT AVG(vote_average) AS ar, AVG(popularity) AS ap
		FROM movies
		WHERE vote_average IS NOT NULL AND popularity IS NOT NULL;
	`).Scan(&avgRating, &avgPop)
	if err != nil {
		return nil, fmt.Errorf("ошибка при расчете средних значений: %w", err)
	}
	stats.AvgRating = avgRating.Float64
	stats.AvgPopularity = avgPop.Float64

	rows, err := db.Query(`
		SELECT title, vote_average, popularity
		FROM movies
		ORDER BY popularity DESC
		LIMIT 5;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе топ-5 фильмов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.Title, &m.VoteAverage, &m.Popularity); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании фильма: %w", err)
		}
		stats.Top5 = append(stats.Top5, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по фильмам: %w", err)
	}

	return &stats, nil
}

// LanguageStat статистика по одному языку оригинала
type LanguageStat struct {
	Language      *string  `json:"language"`
	MovieCount    int      `json:"movieCount"`
	AvgRating     *float64 `json:"avgRating"`
	AvgPopularity *float64 `json:"avgPopularity"`
	TotalVotes    *int     `json:"totalVotes"`
}

// GetLanguageStats возвращает разбивку датасета по языкам оригинала
func GetLanguageStats(db *sql.DB) ([]LanguageStat, error) {
	rows, err := db.Query(`
		SELECT
			original_language,
			COUNT(*) AS movie_count,
			AVG(vote_average) AS avg_rating,
			AVG(popularity) AS avg_popularity,
			SUM(vote_count) AS total_votes
		FROM movies
		GROUP BY original_language
		ORDER BY movie_count DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе статистики по языкам: %w", err)
	}
	defer rows.Close()

	var stats []LanguageStat
	for rows.Next() {
		var s LanguageStat
		if err := rows.Scan(&s.Language, &s.MovieCount, &s.AvgRating,
			&s.AvgPopularity, &s.TotalVotes); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании статистики языка: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по статистике языков: %w", err)
	}
	return stats, nil
}

// GetRatedMovies возвращает фильмы с рейтингом не ниже minRating, количеством
// голосов не меньше minVotes и (опционально) заданным языком оригинала.
// Возвращается топ-50 по рейтингу, затем по количеству голосов.
func GetRatedMovies(db *sql.DB, minRating float64, minVotes int, language string) ([]Movie, *Summary, error) {
	where := []string{"vote_average >= ?", "vote_count >= ?"}
	params := []interface{}{minRating, minVotes}
	if language != "" {
		where = append(where, "original_language = ?")
		params = append(params, language)
	}
	whereSQL := strings.Join(where, " AND ")

	var summary Summary
	var avgRating sql.NullFloat64
	err := db.QueryRow(fmt.Sprintf(`
		SELECT COUNT(*) AS cnt, AVG(vote_average) AS ar
		FROM movies
		WHERE %s;
	`, whereSQL), params...).Scan(&summary.MovieCount, &avgRating)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при расчете статистики рекомендаций: %w", err)
	}
	summary.AvgRating = avgRating.Float64

	rows, err := db.Query(fmt.Sprintf(`
		SELECT title, vote_average, vote_count, popularity
		FROM movies
		WHERE %s
		ORDER BY vote_average DESC, vote_count DESC
		LIMIT 50;
	`, whereSQL), params...)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при запросе рекомендаций: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.Title, &m.VoteAverage, &m.VoteCount, &m.Popularity); err != nil {
			return nil, nil, fmt.Errorf("ошибка при сканировании фильма: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ошибка при итерации по фильмам: %w", err)
	}
	return movies, &summary, nil
}

// GetHiddenGems возвращает фильмы с высоким рейтингом, но низкой популярностью
func GetHiddenGems(db *sql.DB, minRating, maxPopularity float64) ([]Movie, *Summary, error) {
	var summary Summary
	var avgRating sql.NullFloat64
	err := db.QueryRow(`
		SELECT COUNT(*) AS cnt, AVG(vote_average) AS ar
		FROM movies
		WHERE vote_average >= ?
		  AND popularity IS NOT NULL
		  AND popularity <= ?;
	`, minRating, maxPopularity).Scan(&summary.MovieCount, &avgRating)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при расчете статистики скрытых жемчужин: %w", err)
	}
	summary.AvgRating = avgRating.Float64

	rows, err := db.Query(`
		SELECT title, vote_average, vote_count, popularity
		FROM movies
		WHERE vote_average >= ?
		  AND popularity IS NOT NULL
		  AND popularity <= ?
		ORDER BY vote_average DESC, vote_count DESC
		LIMIT 50;
	`, minRating, maxPopularity)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при запросе скрытых жемчужин: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.Title, &m.VoteAverage, &m.VoteCount, &m.Popularity); err != nil {
			return nil, nil, fmt.Errorf("ошибка при сканировании фильма: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ошибка при итерации по фильмам: %w", err)
	}
	return movies, &summary, nil
}
