package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"anota/internal/common"
	"anota/internal/model"
)

const ruleColumns = `id, nombre, match_type, pattern, category_id, priority, enabled, created_at, updated_at`

// CreateRule inserts a new category rule after verifying its category exists.
func (s *SQLiteStorage) CreateRule(ctx context.Context, rule *model.Rule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := rule.Validate(); err != nil {
		return err
	}

	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categorias WHERE id = ?`, rule.CategoryID).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return fmt.Errorf("category %q does not exist", rule.CategoryID)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO reglas (nombre, match_type, pattern, category_id, priority, enabled)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rule.Label, rule.MatchType, rule.Pattern, rule.CategoryID, rule.Priority, rule.Enabled)
	if err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get rule ID: %w", err)
	}

	rule.ID = int(id)
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()

	return nil
}

// GetRule retrieves a rule by ID.
func (s *SQLiteStorage) GetRule(ctx context.Context, id int) (*model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+ruleColumns+` FROM reglas WHERE id = ?`, id)

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rule %d: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return &rule, nil
}

// ListRules returns every rule, enabled or not, in priority order with the
// insertion-order tie-break.
func (s *SQLiteStorage) ListRules(ctx context.Context) ([]model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+ruleColumns+` FROM reglas ORDER BY priority DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ruleSet []model.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		ruleSet = append(ruleSet, rule)
	}
	return ruleSet, rows.Err()
}

// UpdateRule rewrites a rule record wholesale; partial mutation is not
// supported.
func (s *SQLiteStorage) UpdateRule(ctx context.Context, rule *model.Rule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := rule.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE reglas
		 SET nombre = ?, match_type = ?, pattern = ?, category_id = ?,
		     priority = ?, enabled = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rule.Label, rule.MatchType, rule.Pattern, rule.CategoryID,
		rule.Priority, rule.Enabled, rule.ID)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %d: %w", rule.ID, common.ErrNotFound)
	}
	return nil
}

// SetRuleEnabled toggles a rule without deleting it.
func (s *SQLiteStorage) SetRuleEnabled(ctx context.Context, id int, enabled bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE reglas SET enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		enabled, id)
	if err != nil {
		return fmt.Errorf("failed to toggle rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check toggle result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// DeleteRule removes a rule permanently.
func (s *SQLiteStorage) DeleteRule(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM reglas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rule %d: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanRule(row rowScanner) (model.Rule, error) {
	var rule model.Rule
	if err := row.Scan(&rule.ID, &rule.Label, &rule.MatchType, &rule.Pattern,
		&rule.CategoryID, &rule.Priority, &rule.Enabled,
		&rule.CreatedAt, &rule.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rule{}, err
		}
		return model.Rule{}, fmt.Errorf("failed to scan rule: %w", err)
	}
	return rule, nil
}
