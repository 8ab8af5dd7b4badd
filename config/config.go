package config

import (
	"time"
)

// AppConfig содержит конфигурацию сервиса анализа фильмов
type AppConfig struct {
	// Конфигурация HTTP-сервера
	Server ServerConfig `json:"server"`

	// Конфигурация базы данных
	Database DatabaseConfig `json:"database"`

	// Конфигурация импорта данных
	Import ImportConfig `json:"import"`

	// Конфигурация сессий пользователей
	Session SessionConfig `json:"session"`

	// Конфигурация планировщика отчетов
	Reports ReportsConfig `json:"reports"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// ServerConfig содержит настройки HTTP-сервера
type ServerConfig struct {
	Addr         string        `json:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	StaticDir    string        `json:"static_dir"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver string `json:"driver"`
	Path   string `json:"path"`
}

// ImportConfig содержит настройки импорта датасета фильмов
type ImportConfig struct {
	// Путь к CSV-файлу с датасетом
	CSVPath string `json:"csv_path"`

	// Размер пакета при вставке записей
	BatchSize int `json:"batch_size"`
}

// SessionConfig содержит настройки пользовательских сессий
type SessionConfig struct {
	// Время жизни сессии
	TTL time.Duration `json:"ttl"`

	// Интервал очистки истекших сессий
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

// ReportsConfig содержит настройки автоматической генерации отчетов
type ReportsConfig struct {
	// Интервал генерации сводного отчета за текущий год
	SummaryInterval time.Duration `json:"summary_interval"`

	// Количество фильмов в автоматическом сводном отчете
	SummaryTopN int `json:"summary_top_n"`
}

// Значения конфигурации по умолчанию
var (
	DefaultServerConfig = ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		StaticDir:    "public",
	}

	DefaultDatabaseConfig = DatabaseConfig{
		Driver: "sqlite",
		Path:   "movies_acms.db",
	}

	DefaultImportConfig = ImportConfig{
		CSVPath:   "Movies_dataset.csv",
		BatchSize: 500,
	}

	DefaultAppConfig = AppConfig{
		Server:   DefaultServerConfig,
		Database: DefaultDatabaseConfig,
		Import:   DefaultImportConfig,
		Session: SessionConfig{
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Reports: ReportsConfig{
			SummaryInterval: 24 * time.Hour,
			SummaryTopN:     10,
		},
		EnableDetailedLogging: true,
	}
)

// GetConfig возвращает конфигурацию сервиса
func GetConfig() AppConfig {
	config := DefaultAppConfig
	return config
}
