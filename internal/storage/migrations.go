package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categorias (
					id TEXT PRIMARY KEY,
					nombre TEXT UNIQUE NOT NULL,
					keywords TEXT NOT NULL DEFAULT '',
					prioridad INTEGER NOT NULL DEFAULT 0,
					color TEXT NOT NULL DEFAULT '',
					es_predefinida INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS reglas (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					nombre TEXT NOT NULL,
					match_type TEXT NOT NULL,
					pattern TEXT NOT NULL,
					category_id TEXT NOT NULL,
					priority INTEGER NOT NULL DEFAULT 0,
					enabled INTEGER NOT NULL DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (category_id) REFERENCES categorias(id)
				)`,
				`CREATE INDEX idx_reglas_priority ON reglas(priority DESC, id ASC)`,

				`CREATE TABLE IF NOT EXISTS movimientos (
					id TEXT PRIMARY KEY,
					fecha DATETIME NOT NULL,
					monto REAL NOT NULL,
					moneda TEXT NOT NULL DEFAULT 'ARS',
					comercio TEXT NOT NULL DEFAULT '',
					descripcion TEXT NOT NULL DEFAULT '',
					categoria_id TEXT NOT NULL DEFAULT '',
					intent TEXT NOT NULL,
					es_suscripcion INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_movimientos_fecha ON movimientos(fecha)`,
				`CREATE INDEX idx_movimientos_categoria ON movimientos(categoria_id)`,
			}

			for i, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("failed to execute statement %d: %w", i, err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed built-in categories",
		Up: func(tx *sql.Tx) error {
			for _, c := range builtInCategories {
				_, err := tx.Exec(
					`INSERT OR IGNORE INTO categorias (id, nombre, keywords, prioridad, color, es_predefinida)
					 VALUES (?, ?, ?, ?, ?, 1)`,
					c.ID, c.Name, joinKeywords(c.Keywords), c.Priority, c.Color,
				)
				if err != nil {
					return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
