package etl

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/LilVoxy/coursework_movies/config"
	"github.com/LilVoxy/coursework_movies/database"
)

// Importer выполняет импорт датасета фильмов в базу данных
type Importer struct {
	db     *sql.DB
	cfg    config.ImportConfig
	logger *ImportLogger
}

// NewImporter создает новый импортер датасета
func NewImporter(db *sql.DB, cfg config.ImportConfig, logger *ImportLogger) *Importer {
	return &Importer{db: db, cfg: cfg, logger: logger}
}

// ImportFromFile импортирует датасет из настроенного CSV-файла.
// Существующие записи таблицы movies удаляются.
func (imp *Importer) ImportFromFile() (int, error) {
	startTime := time.Now()
	imp.logger.LogImportStart("replace")

	file, err := os.Open(imp.cfg.CSVPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("CSV file not found: %s", imp.cfg.CSVPath)
		}
		return 0, fmt.Errorf("ошибка при открытии CSV-файла: %w", err)
	}
	defer file.Close()

	records, columns, err := ExtractCSV(file)
	if err != nil {
		return 0, err
	}

	// Полный импорт требует столбца с датой релиза
	if !HasColumn(columns, "release_date") {
		return 0, fmt.Errorf("column 'release_date' not found in CSV")
	}

	movies, skipped := TransformRecords(records)

	imported, err := imp.loadInBatches(movies, true)
	if err != nil {
		imp.logger.Error("Ошибка загрузки датасета: %v", err)
		return 0, err
	}

	imp.logger.LogImportComplete(startTime, imported, skipped)
	return imported, nil
}

// ImportFromReader импортирует датасет из произвольного источника
// (например, загруженного файла) в режиме добавления.
func (imp *Importer) ImportFromReader(r io.Reader) (int, error) {
	startTime := time.Now()
	imp.logger.LogImportStart("append")

	records, _, err := ExtractCSV(r)
	if err != nil {
		return 0, err
	}

	movies, skipped := TransformRecords(records)

	imported, err := imp.loadInBatches(movies, false)
	if err != nil {
		imp.logger.Error("Ошибка загрузки датасета: %v", err)
		return 0, err
	}

	imp.logger.LogImportComplete(startTime, imported, skipped)
	return imported, nil
}

// loadInBatches загружает записи пакетами настроенного размера.
// В режиме replace таблица очищается вместе с первым пакетом.
func (imp *Importer) loadInBatches(movies []database.Movie, replace bool) (int, error) {
	batchSize := imp.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = len(movies)
	}
	if len(movies) == 0 {
		return Load(imp.db, nil, replace)
	}

	imported := 0
	for start := 0; start < len(movies); start += batchSize {
		end := start + batchSize
		if end > len(movies) {
			end = len(movies)
		}

		n, err := Load(imp.db, movies[start:end], replace && start == 0)
		if err != nil {
			return imported, err
		}
		imported += n
		imp.logger.Debug("Загружено %d из %d записей", imported, len(movies))
	}
	return imported, nil
}
