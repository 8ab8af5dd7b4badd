package etl

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Record сырая строка CSV-файла, индексированная по заголовкам столбцов
type Record map[string]string

// ExtractCSV читает CSV-файл с датасетом фильмов.
// Первая строка считается заголовком; значения привязываются к именам столбцов.
func ExtractCSV(r io.Reader) ([]Record, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV-файл пуст")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения CSV: %w", err)
	}

	// Нормализуем имена столбцов
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(strings.ToLower(name))
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка чтения CSV: %w", err)
		}

		record := make(Record, len(columns))
		for i, value := range row {
			if i >= len(columns) {
				break
			}
			record[columns[i]] = strings.TrimSpace(value)
		}
		records = append(records, record)
	}

	return records, columns, nil
}

// HasColumn проверяет наличие столбца в заголовке CSV
func HasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
