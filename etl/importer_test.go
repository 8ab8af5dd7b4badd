// etl/importer_test.go
package etl

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LilVoxy/coursework_movies/config"
	"github.com/LilVoxy/coursework_movies/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const sampleCSV = "title,original_language,release_date,popularity,vote_average,vote_count\n" +
	"Inception,en,16-07-2010,82.5,8.4,31000\n" +
	"Tenet,en,2020-08-26,50.1,7.3,8000\n" +
	",en,2020-01-01,1.0,5.0,10\n"

// openTestDB открывает базу данных в памяти с готовой схемой
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Одно соединение, чтобы все запросы видели одну базу в памяти
	db.SetMaxOpenConns(1)

	require.NoError(t, database.CreateSchema(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestImporter создает импортер, пишущий лог во временный каталог
func newTestImporter(t *testing.T, db *sql.DB, csvPath string) *Importer {
	t.Helper()
	t.Chdir(t.TempDir())
	return NewImporter(db, config.ImportConfig{CSVPath: csvPath}, NewImportLogger(false))
}

func countMovies(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM movies;").Scan(&count))
	return count
}

func TestLoadReplace(t *testing.T) {
	db := openTestDB(t)

	first := []database.Movie{{Title: "Old"}}
	_, err := Load(db, first, false)
	require.NoError(t, err)

	second := []database.Movie{{Title: "New A"}, {Title: "New B"}}
	inserted, err := Load(db, second, true)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Режим replace удаляет прежние записи
	assert.Equal(t, 2, countMovies(t, db))
}

func TestLoadAppend(t *testing.T) {
	db := openTestDB(t)

	_, err := Load(db, []database.Movie{{Title: "First"}}, false)
	require.NoError(t, err)

	inserted, err := Load(db, []database.Movie{{Title: "Second"}}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 2, countMovies(t, db))
}

func TestImportFromFile(t *testing.T) {
	db := openTestDB(t)

	csvPath := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0644))

	imp := newTestImporter(t, db, csvPath)

	imported, err := imp.ImportFromFile()
	require.NoError(t, err)

	// Строка без названия пропускается
	assert.Equal(t, 2, imported)
	assert.Equal(t, 2, countMovies(t, db))

	// Даты нормализуются при импорте
	var releaseDate string
	require.NoError(t, db.QueryRow(
		"SELECT release_date FROM movies WHERE title = 'Inception';").Scan(&releaseDate))
	assert.Equal(t, "2010-07-16", releaseDate)
}

func TestImportFromFileMissing(t *testing.T) {
	db := openTestDB(t)
	imp := newTestImporter(t, db, filepath.Join(t.TempDir(), "no_such.csv"))

	_, err := imp.ImportFromFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSV file not found")
}

func TestImportFromFileRequiresReleaseDate(t *testing.T) {
	db := openTestDB(t)

	csvPath := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("title,popularity\nInception,82.5\n"), 0644))

	imp := newTestImporter(t, db, csvPath)

	_, err := imp.ImportFromFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release_date")
}

func TestImportFromReaderAppends(t *testing.T) {
	db := openTestDB(t)

	_, err := Load(db, []database.Movie{{Title: "Existing"}}, false)
	require.NoError(t, err)

	imp := newTestImporter(t, db, "")

	imported, err := imp.ImportFromReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	// Существующие записи сохраняются
	assert.Equal(t, 3, countMovies(t, db))
}
