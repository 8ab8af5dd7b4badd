// routes/sql_handlers.go
package routes

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/LilVoxy/coursework_movies/database"
	"github.com/gorilla/mux"
)

// SQLResultResponse ответ API на выполнение SQL-запроса
type SQLResultResponse struct {
	Name    string                `json:"name,omitempty"`
	SQLText string                `json:"sqlText"`
	Error   string                `json:"error,omitempty"`
	Result  *database.QueryResult `json:"result,omitempty"`
}

// ListQueriesHandler возвращает список сохраненных SQL-запросов
func ListQueriesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queries, err := database.ListSavedQueries(db)
		if err != nil {
			log.Printf("❌ Ошибка при запросе сохраненных запросов: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to list queries")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"queries": queries})
	}
}

// RunSavedQueryHandler выполняет сохраненный SQL-запрос.
// Единственный необязательный параметр подставляется в каждый плейсхолдер "?".
func RunSavedQueryHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid query id")
			return
		}

		query, err := database.GetSavedQueryByID(db, id)
		if err != nil {
			log.Printf("❌ Ошибка при запросе сохраненного запроса: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load query")
			return
		}
		if query == nil {
			writeError(w, http.StatusNotFound, "The query does not exist.")
			return
		}

		param := r.FormValue("param")

		result, err := database.RunSQL(db, query.SQLText, param)
		if err != nil {
			// Ошибка выполнения возвращается вызывающему вместе с текстом запроса
			writeJSON(w, http.StatusOK, SQLResultResponse{
				Name:    query.Name,
				SQLText: query.SQLText,
				Error:   err.Error(),
			})
			return
		}

		log.Printf("✅ Выполнен сохраненный запрос #%d (%s), строк: %d", id, query.Name, len(result.Rows))
		writeJSON(w, http.StatusOK, SQLResultResponse{
			Name:    query.Name,
			SQLText: query.SQLText,
			Result:  result,
		})
	}
}

// Ключевые слова, запрещенные на верхнем уровне читающего запроса
var writeKeywords = map[string]bool{
	"INSERT": true, "UPDATE": true, "DELETE": true, "REPLACE": true,
	"CREATE": true, "DROP": true, "ALTER": true, "PRAGMA": true,
	"ATTACH": true, "DETACH": true, "VACUUM": true, "REINDEX": true,
}

// isReadOnlySQL проверяет, что текст является одиночным читающим запросом.
// Запрос может начинаться с WITH, но после CTE на верхнем уровне
// допускается только SELECT (SQLite разрешает WITH ... DELETE/UPDATE/INSERT).
func isReadOnlySQL(sqlText string) bool {
	trimmed := strings.TrimSpace(sqlText)

	// Допускается не более одной точки с запятой — в самом конце
	if i := strings.IndexByte(trimmed, ';'); i >= 0 && i != len(trimmed)-1 {
		return false
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return false
	}

	for _, token := range topLevelTokens(trimmed) {
		if writeKeywords[token] {
			return false
		}
	}
	return true
}

// topLevelTokens возвращает ключевые слова запроса вне скобок
// и строковых литералов
func topLevelTokens(sqlText string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0
	var quote byte

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToUpper(current.String()))
			current.Reset()
		}
	}

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

		switch {
		case ch == '\'' || ch == '"' || ch == '`':
			flush()
			quote = ch
		case ch == '(':
			flush()
			depth++
		case ch == ')':
			flush()
			if depth > 0 {
				depth--
			}
		case depth == 0 && (ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'):
			current.WriteByte(ch)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// ExecuteSQLHandler выполняет произвольный читающий SQL-запрос
func ExecuteSQLHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlText := r.FormValue("sql")
		if strings.TrimSpace(sqlText) == "" {
			writeError(w, http.StatusBadRequest, "SQL text cannot be empty")
			return
		}

		if !isReadOnlySQL(sqlText) {
			writeError(w, http.StatusBadRequest, "Only single SELECT statements are allowed")
			return
		}

		result, err := database.RunSQL(db, sqlText, r.FormValue("param"))
		if err != nil {
			writeJSON(w, http.StatusOK, SQLResultResponse{
				SQLText: sqlText,
				Error:   err.Error(),
			})
			return
		}

		log.Printf("✅ Выполнен произвольный запрос, строк: %d", len(result.Rows))
		writeJSON(w, http.StatusOK, SQLResultResponse{
			SQLText: sqlText,
			Result:  result,
		})
	}
}
