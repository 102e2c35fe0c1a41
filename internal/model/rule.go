package model

import (
	"fmt"
	"time"
)

// MatchType selects how a rule's pattern is applied to a movement's text.
type MatchType string

// Match type constants.
const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "starts_with"
	MatchPattern    MatchType = "pattern"
)

// Rule maps a text pattern to a category. Rules are user-owned: disabling a
// rule removes it from evaluation without deleting it. Among all enabled
// rules matching a movement, the highest Priority wins; ties break on the
// lower ID (insertion order).
type Rule struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Label      string    `json:"nombre"`
	MatchType  MatchType `json:"match_type"`
	Pattern    string    `json:"pattern"`
	CategoryID string    `json:"category_id"`
	ID         int       `json:"id"`
	Priority   int       `json:"priority"`
	Enabled    bool      `json:"enabled"`
}

// Validate checks that the rule is well-formed before persistence.
func (r *Rule) Validate() error {
	if r.Label == "" {
		return fmt.Errorf("rule label is required")
	}
	if r.Pattern == "" {
		return fmt.Errorf("rule pattern is required")
	}
	if r.CategoryID == "" {
		return fmt.Errorf("rule category is required")
	}
	switch r.MatchType {
	case MatchContains, MatchStartsWith, MatchPattern:
	default:
		return fmt.Errorf("invalid match type %q", r.MatchType)
	}
	return nil
}
