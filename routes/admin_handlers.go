// routes/admin_handlers.go
package routes

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/etl"
	"github.com/LilVoxy/coursework_movies/websocket"
)

// InitSchemaHandler повторно создает структуру таблиц базы данных
func InitSchemaHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.CreateSchema(db); err != nil {
			log.Printf("❌ Ошибка при инициализации схемы: %v", err)
			writeError(w, http.StatusInternalServerError,
				fmt.Sprintf("Initialization failed: %v", err))
			return
		}

		log.Println("✅ Структура базы данных инициализирована")
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "The database structure has been initialized successfully",
		})
	}
}

// InsertDefaultsHandler вставляет шаблоны и запросы по умолчанию
func InsertDefaultsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.InsertDefaults(db); err != nil {
			log.Printf("❌ Ошибка при вставке значений по умолчанию: %v", err)
			writeError(w, http.StatusInternalServerError,
				fmt.Sprintf("Insertion failed: %v", err))
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "The default template and query have been inserted",
		})
	}
}

// ImportHandler импортирует датасет из настроенного CSV-файла.
// Существующие записи о фильмах заменяются.
func ImportHandler(importer *etl.Importer, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imported, err := importer.ImportFromFile()
		if err != nil {
			log.Printf("❌ Ошибка импорта датасета: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if notifier != nil {
			notifier.NotifyImportCompleted(imported, "replace")
		}

		log.Printf("✅ Импортировано %d фильмов из CSV", imported)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  fmt.Sprintf("Imported %d movies from CSV.", imported),
			"imported": imported,
		})
	}
}

// BulkImportHandler импортирует загруженный CSV-файл в режиме добавления
func BulkImportHandler(importer *etl.Importer, notifier *websocket.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("csv_file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "The uploaded file was not found")
			return
		}
		defer file.Close()

		if header.Filename == "" {
			writeError(w, http.StatusBadRequest, "Unselected file")
			return
		}

		if !strings.HasSuffix(header.Filename, ".csv") {
			writeError(w, http.StatusBadRequest, "Please upload the file in CSV format")
			return
		}

		imported, err := importer.ImportFromReader(file)
		if err != nil {
			log.Printf("❌ Ошибка пакетного импорта: %v", err)
			writeError(w, http.StatusInternalServerError,
				fmt.Sprintf("Import failed: %v", err))
			return
		}

		if notifier != nil {
			notifier.NotifyImportCompleted(imported, "append")
		}

		log.Printf("✅ Пакетный импорт: добавлено %d фильмов", imported)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  fmt.Sprintf("Successful import %d film data", imported),
			"imported": imported,
		})
	}
}

// AddMovieHandler добавляет одну запись о фильме вручную
func AddMovieHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.FormValue("title")
		if title == "" {
			writeError(w, http.StatusBadRequest, "The title of the film cannot be empty")
			return
		}

		lang := r.FormValue("lang")
		releaseDate := r.FormValue("release_date")
		popularity := floatOrDefault(r.FormValue("popularity"), 0)
		voteAverage := floatOrDefault(r.FormValue("vote_average"), 0)

		// Количество голосов остается пустым, если не указано
		var voteCount *int
		if v := strings.TrimSpace(r.FormValue("vote_count")); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				voteCount = &i
			}
		}

		// Извлекаем год из первых четырех символов даты
		var releaseYear *int
		if len(releaseDate) >= 4 {
			if y, err := strconv.Atoi(releaseDate[:4]); err == nil {
				releaseYear = &y
			}
		}

		movie := database.Movie{
			Title:       title,
			Popularity:  &popularity,
			VoteAverage: &voteAverage,
			VoteCount:   voteCount,
			ReleaseYear: releaseYear,
		}
		if lang != "" {
			movie.OriginalLanguage = &lang
		}
		if releaseDate != "" {
			movie.ReleaseDate = &releaseDate
		}
		if overview := r.FormValue("overview"); overview != "" {
			movie.Overview = &overview
		}

		movieID, err := database.InsertMovie(db, movie)
		if err != nil {
			log.Printf("❌ Ошибка при добавлении фильма: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to add movie")
			return
		}

		log.Printf("✅ Добавлен фильм #%d (%s)", movieID, title)
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "The movie record has been added successfully",
			"movieId": movieID,
		})
	}
}
