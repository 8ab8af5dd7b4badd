// database/template.go
package database

import (
	"database/sql"
	"fmt"
)

// ReportTemplate структура шаблона отчета
type ReportTemplate struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Topic           string `json:"topic"`
	Description     string `json:"description"`
	ContentText     string `json:"contentText"`
	ContentMarkdown string `json:"contentMarkdown"`
	ContentHTML     string `json:"contentHtml"`
	Active          bool   `json:"active"`
}

// GetActiveTemplateByTopic возвращает активный шаблон по теме или nil
func GetActiveTemplateByTopic(db *sql.DB, topic string) (*ReportTemplate, error) {
	var t ReportTemplate
	var active int
	err := db.QueryRow(`
		SELECT id, name, topic, description, content_text,
		       IFNULL(content_markdown, ''), IFNULL(content_html, ''), active
		FROM templates
		WHERE topic = ? AND active = 1
		LIMIT 1;
	`, topic).Scan(&t.ID, &t.Name, &t.Topic, &t.Description,
		&t.ContentText, &t.ContentMarkdown, &t.ContentHTML, &active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе шаблона: %w", err)
	}
	t.Active = active != 0
	return &t, nil
}

// GetTemplateByID возвращает шаблон по идентификатору или nil
func GetTemplateByID(db *sql.DB, id int) (*ReportTemplate, error) {
	var t ReportTemplate
	var active int
	err := db.QueryRow(`
		SELECT id, name, IFNULL(topic, ''), IFNULL(description, ''), content_text,
		       IFNULL(content_markdown, ''), IFNULL(content_html, ''), active
		FROM templates
		WHERE id = ?;
	`, id).Scan(&t.ID, &t.Name, &t.Topic, &t.Description,
		&t.ContentText, &t.ContentMarkdown, &t.ContentHTML, &active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе шаблона: %w", err)
	}
	t.Active = active != 0
	return &t, nil
}

// ListTemplates возвращает все шаблоны отчетов
func ListTemplates(db *sql.DB) ([]ReportTemplate, error) {
	rows, err := db.Query(`
		SELECT id, name, IFNULL(topic, ''), IFNULL(description, ''), content_text,
		       IFNULL(content_markdown, ''), IFNULL(content_html, ''), active
		FROM templates
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе списка шаблонов: %w", err)
	}
	defer rows.Close()

	var templates []ReportTemplate
	for rows.Next() {
		var t ReportTemplate
		var active int
		if err := rows.Scan(&t.ID, &t.Name, &t.Topic, &t.Description,
			&t.ContentText, &t.ContentMarkdown, &t.ContentHTML, &active); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании шаблона: %w", err)
		}
		t.Active = active != 0
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по шаблонам: %w", err)
	}
	return templates, nil
}

// UpdateTemplate обновляет основные поля шаблона отчета
func UpdateTemplate(db *sql.DB, id int, name, topic, description, contentHTML string, active bool) error {
	activeInt := 0
	if active {
		activeInt = 1
	}
	_, err := db.Exec(`
		UPDATE templates
		SET name = ?, topic = ?, description = ?, content_html = ?, active = ?
		WHERE id = ?;
	`, name, topic, description, contentHTML, activeInt, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении шаблона: %w", err)
	}
	return nil
}
