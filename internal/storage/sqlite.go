// Package storage persists rules, categories, and movements in SQLite.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"database/sql"

	"anota/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements persistence using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Snapshot reads the whole rule and category sets in one pass. Every
// classification or bulk pass works from one snapshot so rules cannot mutate
// mid-evaluation.
func (s *SQLiteStorage) Snapshot(ctx context.Context) ([]model.Rule, []model.Category, error) {
	ruleSet, err := s.ListRules(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ruleSet, categories, nil
}
