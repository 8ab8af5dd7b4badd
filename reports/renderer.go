// reports/renderer.go
package reports

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/LilVoxy/coursework_movies/database"
)

// Values значения для подстановки в плейсхолдеры шаблона
type Values map[string]interface{}

// ErrNoTemplate возвращается, когда для темы нет активного шаблона
var ErrNoTemplate = fmt.Errorf("no active HTML template found")

// FormatTemplate заполняет плейсхолдеры вида {name} и {name:.2f} в тексте
// шаблона. Значение nil выводится как "N/A". Плейсхолдер без значения
// считается ошибкой шаблона.
func FormatTemplate(tmpl string, values Values) (string, error) {
	var out strings.Builder

	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]

		// Экранированные скобки {{ и }}
		if ch == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{' {
			out.WriteByte('{')
			i++
			continue
		}
		if ch == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			out.WriteByte('}')
			i++
			continue
		}

		if ch != '{' {
			out.WriteByte(ch)
			continue
		}

		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("unclosed placeholder at position %d", i)
		}
		placeholder := tmpl[i+1 : i+end]
		i += end

		name := placeholder
		spec := ""
		if colon := strings.IndexByte(placeholder, ':'); colon >= 0 {
			name = placeholder[:colon]
			spec = placeholder[colon+1:]
		}

		value, ok := values[name]
		if !ok {
			return "", fmt.Errorf("missing placeholder %s", name)
		}

		out.WriteString(formatValue(value, spec))
	}

	return out.String(), nil
}

// formatValue форматирует одно значение по спецификации вида ".2f"
func formatValue(value interface{}, spec string) string {
	if value == nil {
		return "N/A"
	}

	if strings.HasPrefix(spec, ".") && strings.HasSuffix(spec, "f") {
		precision, err := strconv.Atoi(spec[1 : len(spec)-1])
		if err == nil {
			if f, ok := toFloat(value); ok {
				return strconv.FormatFloat(f, 'f', precision, 64)
			}
		}
	}

	return fmt.Sprintf("%v", value)
}

// toFloat приводит числовое значение к float64
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return 0, false
}

// Render загружает активный шаблон темы из БД и заполняет его значениями.
// Возвращает идентификатор шаблона и готовый HTML.
func Render(db *sql.DB, topic string, values Values) (int, string, error) {
	tmpl, err := database.GetActiveTemplateByTopic(db, topic)
	if err != nil {
		return 0, "", err
	}
	if tmpl == nil {
		return 0, "", ErrNoTemplate
	}

	// Значения nil заменяются на "N/A" внутри FormatTemplate
	rendered, err := FormatTemplate(tmpl.ContentHTML, values)
	if err != nil {
		return 0, "", fmt.Errorf("template error: %w", err)
	}
	return tmpl.ID, rendered, nil
}
