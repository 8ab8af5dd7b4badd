// database/report.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/coursework_movies/processor"
)

// GeneratedReport структура сохраненного отчета
type GeneratedReport struct {
	ID           int    `json:"id"`
	TemplateID   *int   `json:"templateId"`
	TemplateName string `json:"templateName"`
	GeneratedAt  string `json:"generatedAt"`
	Format       string `json:"format"`
	Parameters   string `json:"parameters"`
	Content      string `json:"content,omitempty"`
}

// SaveReport сохраняет сгенерированный отчет.
// Содержимое сжимается snappy перед записью.
func SaveReport(db *sql.DB, templateID int, parameters, htmlContent string) (int64, error) {
	compressed := processor.CompressReport([]byte(htmlContent))

	result, err := db.Exec(`
		INSERT INTO generated_reports (template_id, generated_at, format, parameters, content)
		VALUES (?, ?, 'html', ?, ?);
	`, templateID, time.Now().Format("2006-01-02 15:04:05"), parameters, compressed)
	if err != nil {
		return 0, fmt.Errorf("ошибка при сохранении отчета: %w", err)
	}
	return result.LastInsertId()
}

// ListReports возвращает список отчетов (без содержимого), новые первыми
func ListReports(db *sql.DB) ([]GeneratedReport, error) {
	rows, err := db.Query(`
		SELECT r.id, r.template_id, r.generated_at, IFNULL(r.format, ''),
		       IFNULL(r.parameters, ''), IFNULL(t.name, '') AS template_name
		FROM generated_reports r
		LEFT JOIN templates t ON r.template_id = t.id
		ORDER BY r.generated_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе списка отчетов: %w", err)
	}
	defer rows.Close()

	var reports []GeneratedReport
	for rows.Next() {
		var r GeneratedReport
		if err := rows.Scan(&r.ID, &r.TemplateID, &r.GeneratedAt, &r.Format,
			&r.Parameters, &r.TemplateName); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании отчета: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по отчетам: %w", err)
	}
	return reports, nil
}

// GetReportByID возвращает отчет с распакованным содержимым или nil
func GetReportByID(db *sql.DB, id int) (*GeneratedReport, error) {
	var r GeneratedReport
	var content []byte
	err := db.QueryRow(`
		SELECT r.id, r.template_id, r.generated_at, IFNULL(r.format, ''),
		       IFNULL(r.parameters, ''), r.content, IFNULL(t.name, '') AS template_name
		FROM generated_reports r
		LEFT JOIN templates t ON r.template_id = t.id
		WHERE r.id = ?;
	`, id).Scan(&r.ID, &r.TemplateID, &r.GeneratedAt, &r.Format,
		&r.Parameters, &content, &r.TemplateName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе отчета: %w", err)
	}

	decompressed, err := processor.DecompressReport(content)
	if err != nil {
		return nil, fmt.Errorf("ошибка при распаковке содержимого отчета: %w", err)
	}
	r.Content = string(decompressed)
	return &r, nil
}
