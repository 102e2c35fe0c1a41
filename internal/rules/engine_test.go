package rules

import (
	"testing"

	"anota/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(id int, pattern string, matchType model.MatchType, categoryID string, priority int, enabled bool) model.Rule {
	return model.Rule{
		ID:         id,
		Label:      pattern,
		MatchType:  matchType,
		Pattern:    pattern,
		CategoryID: categoryID,
		Priority:   priority,
		Enabled:    enabled,
	}
}

func TestEngine_MatchTypes(t *testing.T) {
	tests := []struct {
		name    string
		r       model.Rule
		text    string
		matches bool
	}{
		{name: "contains hit", r: rule(1, "chino", model.MatchContains, "supermercado", 0, true), text: "compras en el chino de la esquina", matches: true},
		{name: "contains miss", r: rule(1, "chino", model.MatchContains, "supermercado", 0, true), text: "carnicería", matches: false},
		{name: "starts_with hit", r: rule(1, "ypf", model.MatchStartsWith, "transporte", 0, true), text: "ypf ruta 2", matches: true},
		{name: "starts_with miss mid-text", r: rule(1, "ypf", model.MatchStartsWith, "transporte", 0, true), text: "cargué en ypf", matches: false},
		{name: "pattern hit", r: rule(1, "netflix|spotify", model.MatchPattern, "entretenimiento", 0, true), text: "debito spotify", matches: true},
		{name: "pattern is case insensitive", r: rule(1, "netflix", model.MatchPattern, "entretenimiento", 0, true), text: "NETFLIX.COM", matches: true},
		{name: "invalid pattern never matches", r: rule(1, "netflix(", model.MatchPattern, "entretenimiento", 0, true), text: "netflix(", matches: false},
		{name: "disabled rule never matches", r: rule(1, "chino", model.MatchContains, "supermercado", 0, false), text: "el chino", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine([]model.Rule{tt.r}, nil)
			got := e.Match(tt.text)
			if tt.matches {
				require.NotNil(t, got)
				assert.Equal(t, tt.r.ID, got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestEngine_PriorityResolution(t *testing.T) {
	high := rule(1, "uber", model.MatchContains, "viajes_trabajo", 100, true)
	low := rule(2, "uber", model.MatchContains, "transporte", 50, true)

	e := NewEngine([]model.Rule{low, high}, nil)
	categoryID, ok := e.Categorize("uber al centro")
	require.True(t, ok)
	assert.Equal(t, "viajes_trabajo", categoryID)

	// Disabling the higher-priority rule flips the result with no other
	// input change.
	high.Enabled = false
	e = NewEngine([]model.Rule{low, high}, nil)
	categoryID, ok = e.Categorize("uber al centro")
	require.True(t, ok)
	assert.Equal(t, "transporte", categoryID)
}

func TestEngine_TieBreakIsInsertionOrder(t *testing.T) {
	first := rule(1, "uber", model.MatchContains, "transporte", 10, true)
	second := rule(7, "uber", model.MatchContains, "viajes_trabajo", 10, true)

	// Equal priorities resolve to the lower ID regardless of slice order.
	e := NewEngine([]model.Rule{second, first}, nil)
	got := e.Match("uber")
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)
}

func TestEngine_KeywordFallback(t *testing.T) {
	categories := []model.Category{
		{ID: "transporte", Name: "Transporte", Keywords: []string{"uber", "nafta"}, Priority: 10},
		{ID: "comida", Name: "Comida", Keywords: []string{"pizza"}, Priority: 5},
	}
	explicit := rule(1, "uber", model.MatchContains, "viajes_trabajo", 1, true)

	e := NewEngine([]model.Rule{explicit}, categories)

	// Any explicit rule outranks keyword fallback.
	categoryID, ok := e.Categorize("uber al centro")
	require.True(t, ok)
	assert.Equal(t, "viajes_trabajo", categoryID)

	// Keywords kick in only when no rule matches.
	categoryID, ok = e.Categorize("pizza con amigos")
	require.True(t, ok)
	assert.Equal(t, "comida", categoryID)

	_, ok = e.Categorize("algo sin categoría")
	assert.False(t, ok)
}

func TestEngine_RecategorizeAll(t *testing.T) {
	ruleSet := []model.Rule{
		rule(1, "uber", model.MatchContains, "transporte", 10, true),
	}
	e := NewEngine(ruleSet, nil)

	movements := []model.Movement{
		{ID: "a", Merchant: "uber", Description: "uber al centro", CategoryID: "otros", Amount: 500},
		{ID: "b", Description: "pizza", CategoryID: "comida", Amount: 2000},
	}

	first := e.RecategorizeAll(movements)
	require.Len(t, first, 2)

	assert.Equal(t, "transporte", first[0].CategoryID)
	// No matching rule: the existing assignment stands.
	assert.Equal(t, "comida", first[1].CategoryID)

	// Only the category changes.
	assert.Equal(t, movements[0].ID, first[0].ID)
	assert.InDelta(t, movements[0].Amount, first[0].Amount, 0.001)
	assert.Equal(t, movements[0].Description, first[0].Description)

	// Idempotence: a second pass with the same snapshot is a no-op.
	second := e.RecategorizeAll(first)
	assert.Equal(t, first, second)
}
