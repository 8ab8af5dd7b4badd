// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/LilVoxy/coursework_movies/config"
	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/etl"
	"github.com/LilVoxy/coursework_movies/reports"
	"github.com/LilVoxy/coursework_movies/routes"
	"github.com/LilVoxy/coursework_movies/session"
	"github.com/LilVoxy/coursework_movies/websocket"
	"github.com/gorilla/mux"
)

func main() {
	fmt.Println("Запуск сервера анализа фильмов...")

	// Параметры командной строки
	addrPtr := flag.String("addr", "", "Адрес HTTP-сервера (переопределяет конфигурацию)")
	dbPathPtr := flag.String("db", "", "Путь к файлу базы данных SQLite")
	csvPathPtr := flag.String("csv", "", "Путь к CSV-файлу с датасетом фильмов")
	flag.Parse()

	cfg := config.GetConfig()
	if *addrPtr != "" {
		cfg.Server.Addr = *addrPtr
	}
	if *dbPathPtr != "" {
		cfg.Database.Path = *dbPathPtr
	}
	if *csvPathPtr != "" {
		cfg.Import.CSVPath = *csvPathPtr
	}

	// Инициализация базы данных
	db, err := database.InitDB(cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		log.Fatalf("❌ Не удалось инициализировать базу данных: %v", err)
	}
	defer database.CloseDB(db)

	// Вставляем шаблоны и запросы по умолчанию
	if err := database.InsertDefaults(db); err != nil {
		log.Fatalf("❌ Не удалось вставить значения по умолчанию: %v", err)
	}

	// Создаем менеджер WebSocket для ленты событий
	wsManager := websocket.NewManager()
	go wsManager.Run()

	// Хранилище сессий с периодической очисткой
	sessions := session.NewManager(cfg.Session.TTL)
	stopCleanup := make(chan struct{})
	go sessions.StartCleanup(cfg.Session.CleanupInterval, stopCleanup)

	// Импортер датасета фильмов
	importLogger := etl.NewImportLogger(cfg.EnableDetailedLogging)
	importer := etl.NewImporter(db, cfg.Import, importLogger)

	// Планировщик автоматических отчетов
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	reportScheduler := reports.NewScheduler(db, cfg.Reports, wsManager)
	go reportScheduler.Start(schedulerCtx)

	// Создаем маршрутизатор и регистрируем обработчики
	router := mux.NewRouter()
	routes.SetupRoutes(router, db, sessions, wsManager, importer, cfg.Server.StaticDir)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, закрываем соединения...")

	// Останавливаем фоновые задачи
	cancelScheduler()
	close(stopCleanup)

	// Останавливаем HTTP-сервер
	if err := server.Shutdown(context.Background()); err != nil {
		log.Printf("❌ Ошибка остановки сервера: %v", err)
	}

	log.Println("👋 Сервер остановлен")
}
