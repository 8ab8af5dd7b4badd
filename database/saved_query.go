// database/saved_query.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// SavedQuery структура сохраненного SQL-запроса
type SavedQuery struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SQLText     string `json:"sqlText"`
}

// QueryResult табличный результат выполнения SQL-запроса
type QueryResult struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// ListSavedQueries возвращает все сохраненные запросы
func ListSavedQueries(db *sql.DB) ([]SavedQuery, error) {
	rows, err := db.Query(`
		SELECT id, name, IFNULL(description, ''), sql_text
		FROM saved_queries
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сохраненных запросов: %w", err)
	}
	defer rows.Close()

	var queries []SavedQuery
	for rows.Next() {
		var q SavedQuery
		if err := rows.Scan(&q.ID, &q.Name, &q.Description, &q.SQLText); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании запроса: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по запросам: %w", err)
	}
	return queries, nil
}

// GetSavedQueryByID возвращает сохраненный запрос по идентификатору или nil
func GetSavedQueryByID(db *sql.DB, id int) (*SavedQuery, error) {
	var q SavedQuery
	err := db.QueryRow(`
		SELECT id, name, IFNULL(description, ''), sql_text
		FROM saved_queries
		WHERE id = ?;
	`, id).Scan(&q.ID, &q.Name, &q.Description, &q.SQLText)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сохраненного запроса: %w", err)
	}
	return &q, nil
}

// countPlaceholders считает плейсхолдеры "?" вне строковых литералов
func countPlaceholders(sqlText string) int {
	count := 0
	var quote byte

	for i := 0; i < len(sqlText); i++ {
		ch := sqlText[i]

		if quote != 0 {
			if ch == quote {
				// Удвоенная кавычка экранирует саму себя
				if i+1 < len(sqlText) && sqlText[i+1] == quote {
					i++
					continue
				}
				quote = 0
			}
			continue
		}

		switch ch {
		case '\'', '"', '`':
			quote = ch
		case '?':
			count++
		}
	}
	return count
}

// RunSQL выполняет произвольный SQL-запрос и возвращает табличный результат.
// Если запрос содержит плейсхолдеры "?", параметр param подставляется в каждый.
func RunSQL(db *sql.DB, sqlText, param string) (*QueryResult, error) {
	sqlText = strings.TrimSpace(sqlText)

	var args []interface{}
	for i := 0; i < countPlaceholders(sqlText); i++ {
		args = append(args, param)
	}

	rows, err := db.Query(sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении столбцов результата: %w", err)
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки результата: %w", err)
		}

		// Байтовые значения приводим к строкам для корректной JSON-сериализации
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по результату запроса: %w", err)
	}
	return result, nil
}
