package etl

import (
	"strconv"
	"time"

	"github.com/LilVoxy/coursework_movies/database"
)

// Поддерживаемые форматы дат в датасете
var dateFormats = []string{"02-01-2006", "2006-01-02", "2006/01/02"}

// ParseReleaseDate разбирает дату релиза в одном из поддерживаемых форматов.
// Возвращает нормализованную дату (YYYY-MM-DD) и год релиза.
// Пустые и нераспознанные значения дают nil, nil.
func ParseReleaseDate(value string) (*string, *int) {
	if value == "" {
		return nil, nil
	}

	for _, format := range dateFormats {
		t, err := time.Parse(format, value)
		if err != nil {
			continue
		}
		normalized := t.Format("2006-01-02")
		year := t.Year()
		return &normalized, &year
	}

	return nil, nil
}

// parseFloat приводит строку к числу, нечисловые значения дают nil
func parseFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseInt приводит строку к целому числу, нечисловые значения дают nil.
// Дробные значения счетчика голосов усекаются.
func parseInt(value string) *int {
	if value == "" {
		return nil
	}
	if i, err := strconv.Atoi(value); err == nil {
		return &i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		i := int(f)
		return &i
	}
	return nil
}

// optionalString возвращает nil для пустых строк
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// TransformRecord преобразует сырую CSV-запись в структуру фильма.
// Возвращает false, если запись непригодна для импорта (пустое название).
func TransformRecord(record Record) (database.Movie, bool) {
	title := record["title"]
	if title == "" {
		return database.Movie{}, false
	}

	releaseDate, releaseYear := ParseReleaseDate(record["release_date"])

	movie := database.Movie{
		Title:            title,
		OriginalLanguage: optionalString(record["original_language"]),
		ReleaseDate:      releaseDate,
		ReleaseYear:      releaseYear,
		Popularity:       parseFloat(record["popularity"]),
		VoteAverage:      parseFloat(record["vote_average"]),
		VoteCount:        parseInt(record["vote_count"]),
		Overview:         optionalString(record["overview"]),
	}
	return movie, true
}

// TransformRecords преобразует все записи, возвращая количество пропущенных
func TransformRecords(records []Record) ([]database.Movie, int) {
	movies := make([]database.Movie, 0, len(records))
	skipped := 0
	for _, record := range records {
		movie, ok := TransformRecord(record)
		if !ok {
			skipped++
			continue
		}
		movies = append(movies, movie)
	}
	return movies, skipped
}
