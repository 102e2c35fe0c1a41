package storage

import (
	"context"
	"fmt"

	"anota/internal/model"
)

const movementColumns = `id, fecha, monto, moneda, comercio, descripcion, categoria_id, intent, es_suscripcion, created_at`

// SaveMovement persists a money event.
func (s *SQLiteStorage) SaveMovement(ctx context.Context, m *model.Movement) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(m.ID, "movement id"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO movimientos (id, fecha, monto, moneda, comercio, descripcion, categoria_id, intent, es_suscripcion)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Date, m.Amount, m.Currency, m.Merchant, m.Description,
		m.CategoryID, m.Intent, m.IsSubscription)
	if err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}
	return nil
}

// ListMovements returns all movements ordered by date.
func (s *SQLiteStorage) ListMovements(ctx context.Context) ([]model.Movement, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+movementColumns+` FROM movimientos ORDER BY fecha ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movements []model.Movement
	for rows.Next() {
		var m model.Movement
		if err := rows.Scan(&m.ID, &m.Date, &m.Amount, &m.Currency,
			&m.Merchant, &m.Description, &m.CategoryID, &m.Intent,
			&m.IsSubscription, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// UpdateMovementCategory rewrites only the category assignment of a
// movement; no other field changes. This is the single write path of the
// bulk recategorization pass.
func (s *SQLiteStorage) UpdateMovementCategory(ctx context.Context, id, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "movement id"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE movimientos SET categoria_id = ? WHERE id = ?`, categoryID, id)
	if err != nil {
		return fmt.Errorf("failed to update movement category: %w", err)
	}
	return nil
}
