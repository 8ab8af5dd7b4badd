// reports/lines.go
package reports

import (
	"fmt"
	"strings"

	"github.com/LilVoxy/coursework_movies/database"
)

// floatOrNA форматирует число с одним знаком после запятой, nil выводится как N/A
func floatOrNA(v *float64, precision int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", precision, *v)
}

// intOrNA форматирует целое число, nil выводится как N/A
func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

// PopularityLines формирует нумерованный список фильмов для отчетов
// о популярности: "1. Title | popularity 12.3 | rating 7.8"
func PopularityLines(movies []database.Movie) string {
	lines := make([]string, 0, len(movies))
	for i, m := range movies {
		lines = append(lines, fmt.Sprintf("%d. %s | popularity %s | rating %s",
			i+1, m.Title, floatOrNA(m.Popularity, 1), floatOrNA(m.VoteAverage, 1)))
	}
	return strings.Join(lines, "\n")
}

// RatingLines формирует список для рекомендательных отчетов:
// "1. Title | rating 7.8 | votes 123 | popularity 12.3"
func RatingLines(movies []database.Movie) string {
	lines := make([]string, 0, len(movies))
	for i, m := range movies {
		lines = append(lines, fmt.Sprintf("%d. %s | rating %s | votes %s | popularity %s",
			i+1, m.Title, floatOrNA(m.VoteAverage, 1), intOrNA(m.VoteCount),
			floatOrNA(m.Popularity, 1)))
	}
	return strings.Join(lines, "\n")
}

// PeriodLines формирует список для отчета по временному окну:
// "1. Title | rating 7.8 | popularity 12.3 | released 2020-01-01"
func PeriodLines(movies []database.Movie) string {
	lines := make([]string, 0, len(movies))
	for i, m := range movies {
		released := "N/A"
		if m.ReleaseDate != nil {
			released = *m.ReleaseDate
		}
		lines = append(lines, fmt.Sprintf("%d. %s | rating %s | popularity %s | released %s",
			i+1, m.Title, floatOrNA(m.VoteAverage, 1), floatOrNA(m.Popularity, 1), released))
	}
	return strings.Join(lines, "\n")
}

// LanguageLines формирует построчную разбивку по языкам:
// "en: 5 movies | avg rating 7.10 | avg popularity 3.50 | total votes 100"
func LanguageLines(stats []database.LanguageStat) string {
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		lang := "N/A"
		if s.Language != nil && *s.Language != "" {
			lang = *s.Language
		}
		totalVotes := 0
		if s.TotalVotes != nil {
			totalVotes = *s.TotalVotes
		}
		lines = append(lines, fmt.Sprintf("%s: %d movies | avg rating %s | avg popularity %s | total votes %d",
			lang, s.MovieCount, floatOrNA(s.AvgRating, 2), floatOrNA(s.AvgPopularity, 2), totalVotes))
	}
	return strings.Join(lines, "\n")
}
