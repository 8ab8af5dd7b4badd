package etl

import (
	"database/sql"
	"fmt"

	"github.com/LilVoxy/coursework_movies/database"
)

// Load загружает фильмы в базу данных одной транзакцией.
// В режиме replace таблица movies предварительно очищается.
func Load(db *sql.DB, movies []database.Movie, replace bool) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.Exec("DELETE FROM movies;"); err != nil {
			return 0, fmt.Errorf("ошибка при очистке таблицы movies: %w", err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO movies
		(title, original_language, release_date, release_year,
		 popularity, vote_average, vote_count, overview)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подготовке запроса вставки: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, m := range movies {
		_, err := stmt.Exec(m.Title, m.OriginalLanguage, m.ReleaseDate, m.ReleaseYear,
			m.Popularity, m.VoteAverage, m.VoteCount, m.Overview)
		if err != nil {
			return 0, fmt.Errorf("ошибка при вставке фильма %q: %w", m.Title, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}
	return inserted, nil
}
