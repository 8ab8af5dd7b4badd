// reports/scheduler_test.go
package reports

import (
	"testing"

	"github.com/LilVoxy/coursework_movies/config"
	"github.com/LilVoxy/coursework_movies/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYearSummary(t *testing.T) {
	db := openTestDB(t)

	title := "Scheduled Hit"
	date := "2024-05-01"
	year := 2024
	pop, rating := 44.0, 8.2
	votes := 300
	_, err := database.InsertMovie(db, database.Movie{
		Title: title, ReleaseDate: &date, ReleaseYear: &year,
		Popularity: &pop, VoteAverage: &rating, VoteCount: &votes,
	})
	require.NoError(t, err)

	s := NewScheduler(db, config.ReportsConfig{SummaryTopN: 5}, nil)

	reportID, err := s.GenerateYearSummary(2024)
	require.NoError(t, err)
	require.Positive(t, reportID)

	report, err := database.GetReportByID(db, int(reportID))
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Contains(t, report.Content, "2024")
	assert.Contains(t, report.Content, "Scheduled Hit")
	assert.Contains(t, report.Parameters, "scheduled year summary")
}

func TestGenerateYearSummarySkipsEmptyYear(t *testing.T) {
	db := openTestDB(t)

	s := NewScheduler(db, config.ReportsConfig{SummaryTopN: 5}, nil)

	// Без данных за год отчет не создается
	reportID, err := s.GenerateYearSummary(1990)
	require.NoError(t, err)
	assert.Zero(t, reportID)

	reports, err := database.ListReports(db)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
