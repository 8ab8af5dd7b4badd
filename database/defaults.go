// database/defaults.go
package database

import (
	"database/sql"
	"fmt"
)

// Темы встроенных шаблонов отчетов
const (
	TopicTopNPopular           = "top_n_popular"
	TopicYearTopPopularity     = "year_top_popularity"
	TopicHighScoreRecommend    = "high_score_recommendation"
	TopicHiddenGems            = "hidden_gems"
	TopicLanguageStructure     = "language_structure"
	TopicTimeWindowPerformance = "time_window_performance"
)

// Встроенные шаблоны отчетов
var defaultTemplates = []ReportTemplate{
	{
		Name:        "Hot Top N Movies",
		Topic:       TopicTopNPopular,
		Description: "Hot movies in a selected time range.",
		ContentHTML: "<h2>Top {n} Most Popular Movies</h2>" +
			"<p>Time range: {time_desc}</p>" +
			"<p>Total movies in range: <strong>{total_movies}</strong></p>" +
			"<p>Average rating: <strong>{avg_rating:.2f}</strong> / 10, " +
			"Average popularity: <strong>{avg_popularity:.2f}</strong></p>" +
			"<h3>Top Titles</h3>" +
			"<pre>{movie_list}</pre>",
	},
	{
		Name:        "Yearly Hot Summary",
		Topic:       TopicYearTopPopularity,
		Description: "Yearly hot movie summary.",
		ContentHTML: "<h2>Yearly Hot Movies Summary – {year}</h2>" +
			"<p>Movies recorded: <strong>{movie_count}</strong></p>" +
			"<p>Average rating: <strong>{avg_rating:.2f}</strong> / 10, " +
			"Average popularity: <strong>{avg_popularity:.2f}</strong></p>" +
			"<h3>Top {n} Titles</h3>" +
			"<pre>{top_n_list}</pre>",
	},
	{
		Name:        "High Score Recommendation",
		Topic:       TopicHighScoreRecommend,
		Description: "High rating movies recommendation list.",
		ContentHTML: "<h2>High-Score Recommendation List</h2>" +
			"<p>Filters: min rating {min_rating:.1f}, min votes {min_votes}, " +
			"language: {language_desc}</p>" +
			"<p>Matched movies: <strong>{movie_count}</strong>, " +
			"average rating <strong>{avg_rating:.2f}</strong> / 10</p>" +
			"<h3>Recommended Titles</h3>" +
			"<pre>{movie_list}</pre>",
	},
	{
		Name:        "Hidden Gems",
		Topic:       TopicHiddenGems,
		Description: "High rating but low popularity movies.",
		ContentHTML: "<h2>Potential Hidden Gems</h2>" +
			"<p>Filters: min rating {min_rating:.1f}, max popularity {max_popularity:.1f}</p>" +
			"<p>Matched movies: <strong>{movie_count}</strong></p>" +
			"<h3>Representative Titles</h3>" +
			"<pre>{movie_list}</pre>",
	},
	{
		Name:        "Language Structure",
		Topic:       TopicLanguageStructure,
		Description: "Movies count and averages by language.",
		ContentHTML: "<h2>Language-Level Content Structure</h2>" +
			"<p>Number of languages: <strong>{language_count}</strong></p>" +
			"<h3>Breakdown</h3>" +
			"<pre>{language_stats}</pre>",
	},
	{
		Name:        "Time Window Performance",
		Topic:       TopicTimeWindowPerformance,
		Description: "Performance of movies in a date range.",
		ContentHTML: "<h2>Time Window Performance</h2>" +
			"<p>Range: {start_date} ~ {end_date}</p>" +
			"<p>Movies in range: <strong>{movie_count}</strong></p>" +
			"<p>Average rating: <strong>{avg_rating:.2f}</strong> / 10, " +
			"Average popularity: <strong>{avg_popularity:.2f}</strong></p>" +
			"<h3>Top {n} Titles</h3>" +
			"<pre>{top_n_list}</pre>",
	},
}

// Встроенные сохраненные SQL-запросы
var defaultQueries = []SavedQuery{
	{
		Name:        "Top 10 popular movies",
		Description: "Top 10 movies ordered by popularity.",
		SQLText: `SELECT title, popularity, vote_average, vote_count
FROM movies
WHERE popularity IS NOT NULL
ORDER BY popularity DESC
LIMIT 10;`,
	},
	{
		Name:        "Average rating by language",
		Description: "Average rating and total votes per original language.",
		SQLText: `SELECT original_language,
       COUNT(*) AS movie_count,
       AVG(vote_average) AS avg_rating,
       AVG(popularity) AS avg_popularity,
       SUM(vote_count) AS total_votes
FROM movies
GROUP BY original_language
ORDER BY avg_rating DESC;`,
	},
	{
		Name:        "Top movie per year by popularity",
		Description: "Get the movie with the highest popularity for a given year.",
		SQLText: `SELECT m.*
FROM movies m
WHERE m.release_year = ?
  AND m.popularity = (
      SELECT MAX(popularity)
      FROM movies
      WHERE release_year = ?
  );`,
	},
}

// InsertDefaults заполняет таблицы шаблонов и сохраненных запросов
// значениями по умолчанию. Вставка выполняется только в пустые таблицы.
func InsertDefaults(db *sql.DB) error {
	var templateCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM templates;").Scan(&templateCount); err != nil {
		return fmt.Errorf("ошибка при подсчете шаблонов: %w", err)
	}

	if templateCount == 0 {
		for _, t := range defaultTemplates {
			_, err := db.Exec(`
				INSERT INTO templates
				(name, topic, description, content_text, content_markdown, content_html, active)
				VALUES (?, ?, ?, ?, ?, ?, 1);
			`, t.Name, t.Topic, t.Description, t.ContentText, t.ContentMarkdown, t.ContentHTML)
			if err != nil {
				return fmt.Errorf("ошибка при вставке шаблона %q: %w", t.Name, err)
			}
		}
	}

	var queryCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM saved_queries;").Scan(&queryCount); err != nil {
		return fmt.Errorf("ошибка при подсчете сохраненных запросов: %w", err)
	}

	if queryCount == 0 {
		for _, q := range defaultQueries {
			_, err := db.Exec(`
				INSERT INTO saved_queries (name, description, sql_text)
				VALUES (?, ?, ?);
			`, q.Name, q.Description, q.SQLText)
			if err != nil {
				return fmt.Errorf("ошибка при вставке запроса %q: %w", q.Name, err)
			}
		}
	}

	return nil
}
