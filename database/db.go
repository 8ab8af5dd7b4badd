// database/db.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB открывает соединение с базой данных SQLite и создает схему
func InitDB(driver, path string) (*sql.DB, error) {
	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	// Настройка параметров подключения
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Проверка подключения
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось установить соединение с базой данных: %w", err)
	}

	// Включаем внешние ключи
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось включить внешние ключи: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	DB = db
	log.Println("✅ Успешное подключение к базе данных", path)
	return db, nil
}

// CreateSchema создает базовую структуру таблиц (идемпотентно)
func CreateSchema(db *sql.DB) error {
	statements := []string{
		// Таблица пользователей
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			email TEXT UNIQUE,
			is_admin INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,

		// Таблица фильмов
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			original_language TEXT,
			release_date TEXT,
			release_year INTEGER,
			popularity REAL,
			vote_average REAL,
			vote_count INTEGER,
			overview TEXT
		);`,

		// Таблица шаблонов отчетов
		`CREATE TABLE IF NOT EXISTS templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			topic TEXT,
			description TEXT,
			content_text TEXT NOT NULL,
			content_markdown TEXT,
			content_html TEXT,
			active INTEGER DEFAULT 1
		);`,

		// Таблица сохраненных SQL-запросов
		`CREATE TABLE IF NOT EXISTS saved_queries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			sql_text TEXT NOT NULL
		);`,

		// Таблица сгенерированных отчетов
		`CREATE TABLE IF NOT EXISTS generated_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id INTEGER,
			generated_at TEXT,
			format TEXT,
			parameters TEXT,
			content BLOB NOT NULL,
			FOREIGN KEY (template_id) REFERENCES templates(id)
		);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ошибка при создании схемы базы данных: %w", err)
		}
	}

	return nil
}

// CloseDB закрывает соединение с базой данных
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("❌ Ошибка закрытия соединения с БД: %v", err)
	} else {
		log.Println("✅ Соединение с БД закрыто")
	}
}
