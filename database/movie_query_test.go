// database/movie_query_test.go
package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openTestDB открывает базу данных в памяти с готовой схемой
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Одно соединение, чтобы все запросы видели одну базу в памяти
	db.SetMaxOpenConns(1)

	require.NoError(t, CreateSchema(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// ptr вспомогательные функции для указателей на литералы
func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

// seedMovies заполняет таблицу movies тестовым набором
func seedMovies(t *testing.T, db *sql.DB) {
	t.Helper()

	movies := []Movie{
		{Title: "Alpha", OriginalLanguage: strPtr("en"), ReleaseDate: strPtr("2020-01-10"),
			ReleaseYear: intPtr(2020), Popularity: floatPtr(50), VoteAverage: floatPtr(8.5), VoteCount: intPtr(1000)},
		{Title: "Beta", OriginalLanguage: strPtr("en"), ReleaseDate: strPtr("2020-06-15"),
			ReleaseYear: intPtr(2020), Popularity: floatPtr(30), VoteAverage: floatPtr(7.0), VoteCount: intPtr(500)},
		{Title: "Gamma", OriginalLanguage: strPtr("fr"), ReleaseDate: strPtr("2021-03-20"),
			ReleaseYear: intPtr(2021), Popularity: floatPtr(80), VoteAverage: floatPtr(9.0), VoteCount: intPtr(50)},
		{Title: "Delta", OriginalLanguage: strPtr("fr"), ReleaseDate: strPtr("2019-11-05"),
			ReleaseYear: intPtr(2019), Popularity: floatPtr(10), VoteAverage: floatPtr(8.8), VoteCount: intPtr(2000)},
		// Запись без метрик не должна попадать в сводную статистику
		{Title: "NoMetrics"},
	}

	for _, m := range movies {
		_, err := InsertMovie(db, m)
		require.NoError(t, err)
	}
}

func TestGetSummary(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	tests := []struct {
		name      string
		filter    TimeFilter
		wantCount int
		wantAvg   float64
	}{
		{name: "все фильмы", filter: TimeFilter{Type: "all"}, wantCount: 4, wantAvg: 8.325},
		{name: "за 2020 год", filter: TimeFilter{Type: "year", Year: 2020}, wantCount: 2, wantAvg: 7.75},
		{name: "диапазон дат", filter: TimeFilter{Type: "range", StartDate: "2020-01-01", EndDate: "2020-12-31"},
			wantCount: 2, wantAvg: 7.75},
		{name: "пустой год", filter: TimeFilter{Type: "year", Year: 1999}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := GetSummary(db, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, summary.MovieCount)
			if tt.wantCount > 0 {
				assert.InDelta(t, tt.wantAvg, summary.AvgRating, 0.001)
			}
		})
	}
}

func TestGetTopByPopularity(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	movies, err := GetTopByPopularity(db, TimeFilter{Type: "all"}, 2)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	// Сортировка по популярности по убыванию
	assert.Equal(t, "Gamma", movies[0].Title)
	assert.Equal(t, "Alpha", movies[1].Title)
}

func TestTimeFilterDescribe(t *testing.T) {
	assert.Equal(t, "all movies", TimeFilter{Type: "all"}.Describe())
	assert.Equal(t, "movies released in 2020", TimeFilter{Type: "year", Year: 2020}.Describe())
	assert.Equal(t, "movies released between 2020-01-01 and 2020-12-31",
		TimeFilter{Type: "range", StartDate: "2020-01-01", EndDate: "2020-12-31"}.Describe())
}

func TestGetOverviewStats(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	stats, err := GetOverviewStats(db)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalMovies)
	// NULL-язык не учитывается в COUNT(DISTINCT ...)
	assert.Equal(t, 2, stats.LanguageCount)
	assert.InDelta(t, 8.325, stats.AvgRating, 0.001)
	assert.InDelta(t, 42.5, stats.AvgPopularity, 0.001)
	require.NotEmpty(t, stats.Top5)
	assert.Equal(t, "Gamma", stats.Top5[0].Title)
}

func TestGetLanguageStats(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	stats, err := GetLanguageStats(db)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	var enStat *LanguageStat
	for i := range stats {
		if stats[i].Language != nil && *stats[i].Language == "en" {
			enStat = &stats[i]
		}
	}
	require.NotNil(t, enStat)
	assert.Equal(t, 2, enStat.MovieCount)
	assert.InDelta(t, 7.75, *enStat.AvgRating, 0.001)
	assert.Equal(t, 1500, *enStat.TotalVotes)
}

func TestGetRatedMovies(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	movies, summary, err := GetRatedMovies(db, 8.0, 100, "")
	require.NoError(t, err)

	// Gamma не проходит по количеству голосов
	require.Len(t, movies, 2)
	assert.Equal(t, "Delta", movies[0].Title)
	assert.Equal(t, "Alpha", movies[1].Title)
	assert.Equal(t, 2, summary.MovieCount)
	assert.InDelta(t, 8.65, summary.AvgRating, 0.001)

	// Фильтр по языку
	movies, summary, err = GetRatedMovies(db, 8.0, 100, "en")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Alpha", movies[0].Title)
	assert.Equal(t, 1, summary.MovieCount)
}

func TestGetHiddenGems(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	movies, summary, err := GetHiddenGems(db, 8.0, 20)
	require.NoError(t, err)

	require.Len(t, movies, 1)
	assert.Equal(t, "Delta", movies[0].Title)
	assert.Equal(t, 1, summary.MovieCount)
	assert.InDelta(t, 8.8, summary.AvgRating, 0.001)
}

func TestSearchMovies(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	movies, stats, err := SearchMovies(db, SearchFilter{
		Language:  "en",
		MinRating: 0,
		MaxRating: 10,
		Limit:     10,
	})
	require.NoError(t, err)

	require.Len(t, movies, 2)
	assert.Equal(t, "Alpha", movies[0].Title)
	assert.Equal(t, "Beta", movies[1].Title)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.MovieCount)

	// Поиск по ключевому слову в названии
	movies, _, err = SearchMovies(db, SearchFilter{
		TitleKeyword: "amm",
		MinRating:    0,
		MaxRating:    10,
		Limit:        10,
	})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Gamma", movies[0].Title)
}

func TestHotDashboardQueries(t *testing.T) {
	db := openTestDB(t)
	seedMovies(t, db)

	title, err := GetTopMovieOfYear(db, 2021)
	require.NoError(t, err)
	assert.Equal(t, "Gamma", title)

	title, err = GetTopMovieOfYear(db, 1999)
	require.NoError(t, err)
	assert.Equal(t, "", title)

	maxPop, err := GetMaxPopularity(db)
	require.NoError(t, err)
	assert.InDelta(t, 80, maxPop, 0.001)

	// 70-й перцентиль из [10 30 50 80] со смещением round(4*0.7)=3
	threshold, err := GetPopularityThreshold(db)
	require.NoError(t, err)
	assert.InDelta(t, 80, threshold, 0.001)

	avgRating, err := GetAvgRatingAbovePopularity(db, 40)
	require.NoError(t, err)
	// Alpha (8.5) и Gamma (9.0) имеют популярность выше 40
	assert.InDelta(t, 8.75, avgRating, 0.001)

	monthly, err := GetMonthlyAvgPopularity(db)
	require.NoError(t, err)
	require.Len(t, monthly, 12)
	assert.InDelta(t, 50, monthly[0], 0.001)  // январь: Alpha
	assert.InDelta(t, 80, monthly[2], 0.001)  // март: Gamma
	assert.InDelta(t, 30, monthly[5], 0.001)  // июнь: Beta
	assert.InDelta(t, 10, monthly[10], 0.001) // ноябрь: Delta
	assert.Zero(t, monthly[7])                // август: нет данных
}
