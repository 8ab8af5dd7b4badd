// routes/api_routes.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/LilVoxy/coursework_movies/etl"
	"github.com/LilVoxy/coursework_movies/middleware"
	"github.com/LilVoxy/coursework_movies/session"
	"github.com/LilVoxy/coursework_movies/websocket"
	"github.com/gorilla/mux"
)

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, db *sql.DB, sessions *session.Manager,
	wsManager *websocket.Manager, importer *etl.Importer, staticDir string) {

	// Применяем CORS middleware
	router.Use(middleware.CORSMiddleware)

	// WebSocket лента событий
	router.HandleFunc("/ws", wsManager.HandleConnections)

	// Авторизация
	router.HandleFunc("/api/register", RegisterHandler(db)).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/login", LoginHandler(db, sessions)).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/logout", LogoutHandler(sessions)).Methods("POST", "OPTIONS")

	// Защищенный обработчик с проверкой сессии
	auth := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(sessions, h)
	}

	// Общая сводка и панель горячих фильмов
	router.HandleFunc("/api/overview", auth(GetOverviewHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/hot", auth(GetHotDashboardHandler(db))).Methods("GET", "OPTIONS")

	// Отчеты о популярных фильмах
	router.HandleFunc("/api/hot/topn", auth(HotTopNHandler(db, wsManager))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/hot/year", auth(YearHotHandler(db, wsManager))).Methods("POST", "OPTIONS")

	// Рекомендации и подбор фильмов
	router.HandleFunc("/api/recommend/highscore", auth(HighScoreHandler(db, wsManager))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/recommend/potential", auth(HiddenGemsHandler(db, wsManager))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/movies/search", MovieSearchHandler(db)).Methods("POST", "OPTIONS")

	// Структура контента и результаты по периодам
	router.HandleFunc("/api/structure/language", auth(LanguageStatsHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/structure/period", auth(PeriodStatsHandler(db, wsManager))).Methods("POST", "OPTIONS")

	// Отчеты и шаблоны
	router.HandleFunc("/api/reports", auth(ListReportsHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/reports/{id:[0-9]+}", auth(GetReportHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/templates", auth(ListTemplatesHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/templates/{id:[0-9]+}", auth(UpdateTemplateHandler(db))).Methods("POST", "PUT", "OPTIONS")

	// Сохраненные и произвольные SQL-запросы
	router.HandleFunc("/api/sql", auth(ListQueriesHandler(db))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/sql/run/{id:[0-9]+}", auth(RunSavedQueryHandler(db))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/sql/execute", auth(ExecuteSQLHandler(db))).Methods("POST", "OPTIONS")

	// Администрирование
	router.HandleFunc("/api/admin/init", auth(InitSchemaHandler(db))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/admin/defaults", auth(InsertDefaultsHandler(db))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/admin/import", auth(ImportHandler(importer, wsManager))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/admin/bulk-import", auth(BulkImportHandler(importer, wsManager))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/admin/movies", auth(AddMovieHandler(db))).Methods("POST", "OPTIONS")

	// Статические файлы
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
}
