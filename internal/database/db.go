package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"skycast/internal/metrics"
	"skycast/internal/models"
)

// ErrConnection marks failures to reach the database, as opposed to failures
// writing to it. Callers relay both as a save failure but with different
// messages.
var ErrConnection = errors.New("database connection failed")

// DB represents the database connection
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection and initializes the schema.
// dsn format: "username:password@tcp(host:port)/dbname?parseTime=true"
func NewDB(dsn string) (*DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Configure connection pool
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// initSchema creates the forecasts table. Safe to run on every start.
func (db *DB) initSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS forecasts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_name VARCHAR(100) NOT NULL,
		city VARCHAR(100) NOT NULL,
		forecast_data JSON NOT NULL,
		saved_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

	if _, err := db.conn.Exec(stmt); err != nil {
		return fmt.Errorf("failed to execute schema statement: %w", err)
	}

	return nil
}

// SaveForecast persists one forecast row. The raw document is stored verbatim.
// A write failure rolls the transaction back before it is reported; there is no
// retry. Connection failures are reported as ErrConnection.
func (db *DB) SaveForecast(userName, city string, forecastData json.RawMessage) error {
	defer func() {
		stats := db.conn.Stats()
		metrics.UpdateDBConnectionStats(stats.OpenConnections, stats.InUse, stats.Idle)
	}()

	if err := db.conn.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if committed

	query := `INSERT INTO forecasts (user_name, city, forecast_data) VALUES (?, ?, ?)`
	queryStart := time.Now()
	_, err = tx.Exec(query, userName, city, []byte(forecastData))
	metrics.RecordDBQuery("INSERT", "forecasts", time.Since(queryStart), err)
	if err != nil {
		return fmt.Errorf("failed to insert forecast: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecentForecasts returns metadata of the most recently saved forecasts, newest
// first. The raw document is not loaded.
func (db *DB) RecentForecasts(limit int) ([]models.SavedForecast, error) {
	query := `SELECT id, user_name, city, saved_at FROM forecasts ORDER BY saved_at DESC, id DESC LIMIT ?`
	queryStart := time.Now()
	rows, err := db.conn.Query(query, limit)
	metrics.RecordDBQuery("SELECT", "forecasts", time.Since(queryStart), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query forecasts: %w", err)
	}
	defer rows.Close()

	var saved []models.SavedForecast
	for rows.Next() {
		var s models.SavedForecast
		if err := rows.Scan(&s.ID, &s.UserName, &s.City, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan forecast row: %w", err)
		}
		saved = append(saved, s)
	}

	return saved, rows.Err()
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
