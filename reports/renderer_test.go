// reports/renderer_test.go
package reports

import (
	"database/sql"
	"testing"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openTestDB открывает базу данных в памяти со схемой и шаблонами по умолчанию
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Одно соединение, чтобы все запросы видели одну базу в памяти
	db.SetMaxOpenConns(1)

	require.NoError(t, database.CreateSchema(db))
	require.NoError(t, database.InsertDefaults(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func TestFormatTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   Values
		want     string
		wantErr  string
	}{
		{
			name:     "простые плейсхолдеры",
			template: "Top {n} movies for {time_desc}",
			values:   Values{"n": 5, "time_desc": "all movies"},
			want:     "Top 5 movies for all movies",
		},
		{
			name:     "форматирование с точностью",
			template: "rating {avg_rating:.2f}, popularity {avg_popularity:.1f}",
			values:   Values{"avg_rating": 7.256, "avg_popularity": 12.04},
			want:     "rating 7.26, popularity 12.0",
		},
		{
			name:     "nil выводится как N/A",
			template: "value: {value}",
			values:   Values{"value": nil},
			want:     "value: N/A",
		},
		{
			name:     "отсутствующий плейсхолдер",
			template: "hello {missing}",
			values:   Values{},
			wantErr:  "missing placeholder missing",
		},
		{
			name:     "экранированные скобки",
			template: "literal {{braces}} and {n}",
			values:   Values{"n": 1},
			want:     "literal {braces} and 1",
		},
		{
			name:     "незакрытый плейсхолдер",
			template: "broken {n",
			values:   Values{"n": 1},
			wantErr:  "unclosed placeholder",
		},
		{
			name:     "строка вместо числа в числовом формате",
			template: "{value:.2f}",
			values:   Values{"value": "N/A"},
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTemplate(tt.template, tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderUsesActiveTemplate(t *testing.T) {
	db := openTestDB(t)

	templateID, html, err := Render(db, database.TopicHiddenGems, Values{
		"min_rating":     8.0,
		"max_popularity": 200.0,
		"movie_count":    3,
		"movie_list":     "1. Example | rating 8.5 | votes 120 | popularity 15.0",
	})
	require.NoError(t, err)
	assert.NotZero(t, templateID)
	assert.Contains(t, html, "Potential Hidden Gems")
	assert.Contains(t, html, "min rating 8.0, max popularity 200.0")
	assert.Contains(t, html, "<strong>3</strong>")
	assert.Contains(t, html, "1. Example")
}

func TestRenderUnknownTopic(t *testing.T) {
	db := openTestDB(t)

	_, _, err := Render(db, "no_such_topic", Values{})
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestRenderMissingValue(t *testing.T) {
	db := openTestDB(t)

	// Шаблон года требует top_n_list
	_, _, err := Render(db, database.TopicYearTopPopularity, Values{
		"year":           2024,
		"movie_count":    1,
		"avg_rating":     7.0,
		"avg_popularity": 3.0,
		"n":              1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing placeholder top_n_list")
}

func TestPopularityLines(t *testing.T) {
	pop1, rating1 := 25.5, 8.1
	movies := []database.Movie{
		{Title: "First", Popularity: &pop1, VoteAverage: &rating1},
		{Title: "Second"},
	}

	got := PopularityLines(movies)
	assert.Equal(t,
		"1. First | popularity 25.5 | rating 8.1\n"+
			"2. Second | popularity N/A | rating N/A", got)
}

func TestLanguageLines(t *testing.T) {
	en := "en"
	rating, pop := 7.134, 3.5
	votes := 100
	stats := []database.LanguageStat{
		{Language: &en, MovieCount: 5, AvgRating: &rating, AvgPopularity: &pop, TotalVotes: &votes},
		{MovieCount: 2},
	}

	got := LanguageLines(stats)
	assert.Equal(t,
		"en: 5 movies | avg rating 7.13 | avg popularity 3.50 | total votes 100\n"+
			"N/A: 2 movies | avg rating N/A | avg popularity N/A | total votes 0", got)
}
