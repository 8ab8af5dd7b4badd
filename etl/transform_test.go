// etl/transform_test.go
package etl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantDate string
		wantYear int
		wantNil  bool
	}{
		{name: "формат DD-MM-YYYY", value: "25-12-2019", wantDate: "2019-12-25", wantYear: 2019},
		{name: "формат YYYY-MM-DD", value: "2020-01-15", wantDate: "2020-01-15", wantYear: 2020},
		{name: "формат YYYY/MM/DD", value: "2021/06/30", wantDate: "2021-06-30", wantYear: 2021},
		{name: "пустое значение", value: "", wantNil: true},
		{name: "мусор", value: "not-a-date", wantNil: true},
		{name: "несуществующая дата", value: "2020-13-45", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, year := ParseReleaseDate(tt.value)
			if tt.wantNil {
				assert.Nil(t, date)
				assert.Nil(t, year)
				return
			}
			require.NotNil(t, date)
			require.NotNil(t, year)
			assert.Equal(t, tt.wantDate, *date)
			assert.Equal(t, tt.wantYear, *year)
		})
	}
}

func TestTransformRecord(t *testing.T) {
	movie, ok := TransformRecord(Record{
		"title":             "Inception",
		"original_language": "en",
		"release_date":      "16-07-2010",
		"popularity":        "82.5",
		"vote_average":      "8.4",
		"vote_count":        "31000",
		"overview":          "A thief who steals corporate secrets.",
	})
	require.True(t, ok)

	assert.Equal(t, "Inception", movie.Title)
	require.NotNil(t, movie.OriginalLanguage)
	assert.Equal(t, "en", *movie.OriginalLanguage)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, "2010-07-16", *movie.ReleaseDate)
	require.NotNil(t, movie.ReleaseYear)
	assert.Equal(t, 2010, *movie.ReleaseYear)
	require.NotNil(t, movie.Popularity)
	assert.InDelta(t, 82.5, *movie.Popularity, 0.001)
	require.NotNil(t, movie.VoteCount)
	assert.Equal(t, 31000, *movie.VoteCount)
}

func TestTransformRecordLenientNumbers(t *testing.T) {
	movie, ok := TransformRecord(Record{
		"title":        "Broken Numbers",
		"popularity":   "abc",
		"vote_average": "",
		"vote_count":   "120.0",
	})
	require.True(t, ok)

	// Нечисловые значения дают NULL
	assert.Nil(t, movie.Popularity)
	assert.Nil(t, movie.VoteAverage)

	// Дробный счетчик голосов усекается
	require.NotNil(t, movie.VoteCount)
	assert.Equal(t, 120, *movie.VoteCount)
}

func TestTransformRecordsSkipsEmptyTitles(t *testing.T) {
	records := []Record{
		{"title": "Kept"},
		{"title": ""},
		{"popularity": "1.0"},
	}

	movies, skipped := TransformRecords(records)
	assert.Len(t, movies, 1)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "Kept", movies[0].Title)
}

func TestExtractCSV(t *testing.T) {
	csvData := "Title,Release_Date,popularity\nInception,16-07-2010,82.5\nTenet,2020-08-26,50.1\n"

	records, columns, err := ExtractCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	// Имена столбцов нормализуются к нижнему регистру
	assert.Equal(t, []string{"title", "release_date", "popularity"}, columns)
	assert.True(t, HasColumn(columns, "release_date"))
	assert.False(t, HasColumn(columns, "overview"))

	require.Len(t, records, 2)
	assert.Equal(t, "Inception", records[0]["title"])
	assert.Equal(t, "2020-08-26", records[1]["release_date"])
}

func TestExtractCSVEmpty(t *testing.T) {
	_, _, err := ExtractCSV(strings.NewReader(""))
	assert.Error(t, err)
}
