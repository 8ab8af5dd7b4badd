// database/movie.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Movie структура записи о фильме
type Movie struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	OriginalLanguage *string  `json:"originalLanguage"`
	ReleaseDate      *string  `json:"releaseDate"`
	ReleaseYear      *int     `json:"releaseYear"`
	Popularity       *float64 `json:"popularity"`
	VoteAverage      *float64 `json:"voteAverage"`
	VoteCount        *int     `json:"voteCount"`
	Overview         *string  `json:"overview,omitempty"`
}

// InsertMovie добавляет одну запись о фильме
func InsertMovie(db *sql.DB, m Movie) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO movies
		(title, original_language, release_date, release_year,
		 popularity, vote_average, vote_count, overview)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, m.Title, m.OriginalLanguage, m.ReleaseDate, m.ReleaseYear,
		m.Popularity, m.VoteAverage, m.VoteCount, m.Overview)
	if err != nil {
		return 0, fmt.Errorf("ошибка при добавлении фильма: %w", err)
	}
	return result.LastInsertId()
}

// SearchFilter параметры поиска фильмов
type SearchFilter struct {
	TitleKeyword  string
	Language      string
	ReleaseYear   string
	MinRating     float64
	MaxRating     float64
	MinPopularity float64
	Limit         int
}

// SearchStats сводная статистика по результатам поиска
type SearchStats struct {
	MovieCount    int      `json:"movieCount"`
	AvgRating     *float64 `json:"avgRating"`
	AvgPopularity *float64 `json:"avgPopularity"`
}

// buildSearchWhere собирает условия WHERE для поиска фильмов
func buildSearchWhere(f SearchFilter) (string, []interface{}) {
	var conditions []string
	var params []interface{}

	if f.TitleKeyword != "" {
		conditions = append(conditions, "title LIKE ?")
		params = append(params, "%"+f.TitleKeyword+"%")
	}

	if f.Language != "" {
		conditions = append(conditions, "original_language = ?")
		params = append(params, f.Language)
	}

	if f.ReleaseYear != "" {
		conditions = append(conditions, "release_year = ?")
		params = append(params, f.ReleaseYear)
	}

	conditions = append(conditions, "vote_average BETWEEN ? AND ?")
	params = append(params, f.MinRating, f.MaxRating)

	conditions = append(conditions, "popularity >= ?")
	params = append(params, f.MinPopularity)

	return "WHERE " + strings.Join(conditions, " AND "), params
}

// SearchMovies выполняет поиск фильмов по фильтру и возвращает список со статистикой
func SearchMovies(db *sql.DB, f SearchFilter) ([]Movie, *SearchStats, error) {
	whereClause, params := buildSearchWhere(f)

	query := fmt.Sprintf(`
		SELECT title, original_language, release_year, vote_average, popularity, vote_count
		FROM movies
		%s
		ORDER BY popularity DESC
		LIMIT ?
	`, whereClause)

	rows, err := db.Query(query, append(append([]interface{}{}, params...), f.Limit)...)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при поиске фильмов: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.Title, &m.OriginalLanguage, &m.ReleaseYear,
			&m.VoteAverage, &m.Popularity, &m.VoteCount); err != nil {
			return nil, nil, fmt.Errorf("ошибка при сканировании фильма: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("ошибка при итерации по фильмам: %w", err)
	}

	// Сводная статистика по тем же условиям
	statsQuery := fmt.Sprintf(`
		SELECT COUNT(*) AS movie_count,
		       AVG(vote_average) AS avg_rating,
		       AVG(popularity) AS avg_popularity
		FROM movies
		%s
	`, whereClause)

	var stats SearchStats
	if err := db.QueryRow(statsQuery, params...).Scan(
		&stats.MovieCount, &stats.AvgRating, &stats.AvgPopularity); err != nil {
		return nil, nil, fmt.Errorf("ошибка при расчете статистики поиска: %w", err)
	}

	return movies, &stats, nil
}
