package etl

import (
	"fmt"
	"log"
	"os"
	"time"
)

// ImportLogger представляет логгер для процесса импорта данных
type ImportLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
}

// NewImportLogger создает новый экземпляр логгера импорта
func NewImportLogger(verbose bool) *ImportLogger {
	// Создаем или открываем лог-файл для записи
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("import_log_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		// Если файл недоступен, пишем только в стандартный вывод
		log.Printf("Не удалось открыть или создать файл лога: %v", err)
		file = os.Stdout
	}

	// Инициализируем логгеры для разных уровней
	infoLogger := log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger := log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger := log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return &ImportLogger{
		infoLogger:  infoLogger,
		errorLogger: errorLogger,
		debugLogger: debugLogger,
		isVerbose:   verbose,
	}
}

// Info логирует информационное сообщение
func (l *ImportLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("INFO:", msg)
}

// Error логирует сообщение об ошибке
func (l *ImportLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("ERROR:", msg)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ImportLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("DEBUG:", msg)
}

// LogImportStart логирует начало импорта
func (l *ImportLogger) LogImportStart(mode string) {
	l.Info("Начало импорта датасета фильмов (режим: %s)", mode)
}

// LogImportComplete логирует завершение импорта
func (l *ImportLogger) LogImportComplete(startTime time.Time, imported, skipped int) {
	duration := time.Since(startTime)
	l.Info("Импорт завершён. Длительность: %v", duration)
	l.Info("Импортировано: %d записей, пропущено: %d", imported, skipped)
}
