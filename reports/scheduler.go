// reports/scheduler.go
package reports

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/LilVoxy/coursework_movies/config"
	"github.com/LilVoxy/coursework_movies/database"
	"github.com/LilVoxy/coursework_movies/websocket"
	"github.com/go-co-op/gocron"
)

// Scheduler периодически генерирует сводный отчет за текущий год
type Scheduler struct {
	db       *sql.DB
	cfg      config.ReportsConfig
	notifier *websocket.Manager
}

// NewScheduler создает планировщик автоматических отчетов
func NewScheduler(db *sql.DB, cfg config.ReportsConfig, notifier *websocket.Manager) *Scheduler {
	return &Scheduler{db: db, cfg: cfg, notifier: notifier}
}

// GenerateYearSummary генерирует и сохраняет сводный отчет за указанный год.
// Если за год нет данных, отчет не создается.
func (s *Scheduler) GenerateYearSummary(year int) (int64, error) {
	filter := database.TimeFilter{Type: "year", Year: year}

	summary, err := database.GetSummary(s.db, filter)
	if err != nil {
		return 0, err
	}
	if summary.MovieCount == 0 {
		log.Printf("⚠️ Нет данных за %d год, автоматический отчет пропущен", year)
		return 0, nil
	}

	movies, err := database.GetTopByPopularity(s.db, filter, s.cfg.SummaryTopN)
	if err != nil {
		return 0, err
	}

	templateID, html, err := Render(s.db, database.TopicYearTopPopularity, Values{
		"year":           year,
		"movie_count":    summary.MovieCount,
		"avg_rating":     summary.AvgRating,
		"avg_popularity": summary.AvgPopularity,
		"n":              len(movies),
		"top_n_list":     PopularityLines(movies),
	})
	if err != nil {
		return 0, err
	}

	params := fmt.Sprintf("scheduled year summary | year=%d", year)
	reportID, err := database.SaveReport(s.db, templateID, params, html)
	if err != nil {
		return 0, err
	}

	if s.notifier != nil {
		s.notifier.NotifyReportGenerated(reportID, "Yearly Hot Summary", params)
	}
	return reportID, nil
}

// Start запускает планировщик и блокируется до отмены контекста
func (s *Scheduler) Start(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	log.Printf("✅ Запуск планировщика отчетов с интервалом %v", s.cfg.SummaryInterval)

	_, err := scheduler.Every(s.cfg.SummaryInterval).Do(func() {
		year := time.Now().Year()
		log.Printf("Запланированная генерация сводного отчета за %d год", year)
		if _, err := s.GenerateYearSummary(year); err != nil {
			log.Printf("❌ Ошибка при генерации автоматического отчета: %v", err)
		}
	})
	if err != nil {
		log.Printf("❌ Ошибка при настройке планировщика отчетов: %v", err)
		return
	}

	scheduler.StartAsync()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	scheduler.Stop()
	log.Println("Планировщик отчетов остановлен")
}
