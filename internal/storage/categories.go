package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"anota/internal/common"
	"anota/internal/model"

	"github.com/mattn/go-sqlite3"
)

// builtInCategories are seeded once at migration time. They cannot be
// deleted but match identically to user categories.
var builtInCategories = []model.Category{
	{ID: "comida", Name: "Comida", Keywords: []string{"restaurante", "pizza", "empanadas", "hamburguesa", "rappi", "pedidosya", "delivery", "cafe", "café", "almuerzo", "cena"}, Priority: 10, Color: "#FF6B6B"},
	{ID: "supermercado", Name: "Supermercado", Keywords: []string{"supermercado", "chino", "coto", "carrefour", "dia", "verduleria", "verdulería", "carniceria", "carnicería", "panaderia", "panadería"}, Priority: 10, Color: "#4ECDC4"},
	{ID: "transporte", Name: "Transporte", Keywords: []string{"uber", "cabify", "didi", "sube", "colectivo", "tren", "subte", "nafta", "ypf", "shell", "axion", "peaje", "taxi"}, Priority: 10, Color: "#FFE66D"},
	{ID: "servicios", Name: "Servicios", Keywords: []string{"luz", "gas", "agua", "internet", "alquiler", "expensas", "celular", "abl", "monotributo"}, Priority: 10, Color: "#95E1D3"},
	{ID: "entretenimiento", Name: "Entretenimiento", Keywords: []string{"netflix", "spotify", "disney", "hbo", "cine", "juego", "steam", "salida", "birra", "cerveza", "bar"}, Priority: 5, Color: "#A98BF2"},
	{ID: "salud", Name: "Salud", Keywords: []string{"farmacia", "medico", "médico", "dentista", "prepaga", "obra social", "remedio", "psicologo", "psicólogo"}, Priority: 10, Color: "#F08A5D"},
	{ID: "hogar", Name: "Hogar", Keywords: []string{"ferreteria", "ferretería", "muebles", "limpieza", "easy", "sodimac"}, Priority: 5, Color: "#B8B5FF"},
	{ID: "otros", Name: "Otros", Keywords: nil, Priority: 0, Color: "#666666"},
}

const categoryColumns = `id, nombre, keywords, prioridad, color, es_predefinida, created_at`

// ListCategories returns all categories ordered by priority then ID.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categorias ORDER BY prioridad DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory retrieves a category by ID.
func (s *SQLiteStorage) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categorias WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

// CreateCategory inserts a user-defined category.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, c *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(c.ID, "category id"); err != nil {
		return err
	}
	if err := validateString(c.Name, "category name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categorias (id, nombre, keywords, prioridad, color, es_predefinida)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, joinKeywords(c.Keywords), c.Priority, c.Color, c.BuiltIn)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("category %s: %w", c.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory removes a user category. Built-in categories are protected.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	var builtIn bool
	err := s.db.QueryRowContext(ctx,
		`SELECT es_predefinida FROM categorias WHERE id = ?`, id).Scan(&builtIn)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("category %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if builtIn {
		return fmt.Errorf("category %s: %w", id, common.ErrBuiltInCategory)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categorias WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (model.Category, error) {
	var c model.Category
	var keywords string
	if err := row.Scan(&c.ID, &c.Name, &keywords, &c.Priority, &c.Color, &c.BuiltIn, &c.CreatedAt); err != nil {
		return model.Category{}, fmt.Errorf("failed to scan category: %w", err)
	}
	c.Keywords = splitKeywords(keywords)
	return c, nil
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

func splitKeywords(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
