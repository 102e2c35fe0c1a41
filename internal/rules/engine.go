// Package rules evaluates category rules against movement text. An Engine is
// built from a read-only snapshot of rules and categories, so concurrent
// classifications never share mutable state.
package rules

import (
	"regexp"
	"sort"
	"strings"

	"anota/internal/model"
)

// Engine assigns categories from a snapshot of pattern rules, falling back
// to category keyword lists when no explicit rule matches.
type Engine struct {
	compiled   map[int]*regexp.Regexp
	rules      []model.Rule
	categories []model.Category
}

// NewEngine creates an engine over a snapshot of rules and categories. The
// snapshot is sorted once: priority descending, then ID ascending, so the
// winning rule for any text is deterministic regardless of input order.
func NewEngine(ruleSet []model.Rule, categories []model.Category) *Engine {
	sorted := make([]model.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})

	sortedCats := make([]model.Category, len(categories))
	copy(sortedCats, categories)
	sort.SliceStable(sortedCats, func(i, j int) bool {
		if sortedCats[i].Priority != sortedCats[j].Priority {
			return sortedCats[i].Priority > sortedCats[j].Priority
		}
		return sortedCats[i].ID < sortedCats[j].ID
	})

	e := &Engine{
		rules:      sorted,
		categories: sortedCats,
		compiled:   make(map[int]*regexp.Regexp),
	}

	// Pre-compile full-pattern rules; an invalid pattern simply never
	// matches.
	for _, r := range sorted {
		if r.MatchType == model.MatchPattern && r.Pattern != "" {
			if re, err := regexp.Compile("(?i)" + r.Pattern); err == nil {
				e.compiled[r.ID] = re
			}
		}
	}

	return e
}

// Match returns the highest-priority enabled rule matching the text, or nil.
func (e *Engine) Match(text string) *model.Rule {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for i := range e.rules {
		r := &e.rules[i]
		if !r.Enabled {
			continue
		}
		if e.ruleMatches(r, lowered) {
			return r
		}
	}
	return nil
}

// Categorize returns the category for the text: the winning explicit rule
// first, then category keyword lists (implicitly lower priority than any
// rule), then nothing.
func (e *Engine) Categorize(text string) (string, bool) {
	if r := e.Match(text); r != nil {
		return r.CategoryID, true
	}
	return e.keywordFallback(text)
}

// RecategorizeAll re-evaluates every movement against the snapshot and
// rewrites only the category assignment. It is a pure function and
// idempotent: a second pass with the same snapshot changes nothing.
func (e *Engine) RecategorizeAll(movements []model.Movement) []model.Movement {
	out := make([]model.Movement, len(movements))
	for i, m := range movements {
		if categoryID, ok := e.Categorize(categorizeText(m)); ok {
			m.CategoryID = categoryID
		}
		out[i] = m
	}
	return out
}

// categorizeText is the single text surface rules see for a movement, shared
// by assign-on-create and bulk reassign.
func categorizeText(m model.Movement) string {
	if m.Description != "" && m.Merchant != "" {
		return m.Merchant + " " + m.Description
	}
	if m.Description != "" {
		return m.Description
	}
	return m.Merchant
}

func (e *Engine) ruleMatches(r *model.Rule, text string) bool {
	pattern := strings.ToLower(r.Pattern)
	switch r.MatchType {
	case model.MatchContains:
		return strings.Contains(text, pattern)
	case model.MatchStartsWith:
		return strings.HasPrefix(text, pattern)
	case model.MatchPattern:
		re, ok := e.compiled[r.ID]
		return ok && re.MatchString(text)
	}
	return false
}

// keywordFallback matches category keywords with the same containment
// semantics as contains rules, ordered by category priority then ID.
func (e *Engine) keywordFallback(text string) (string, bool) {
	lowered := strings.ToLower(text)

	for _, c := range e.categories {
		for _, kw := range c.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return c.ID, true
			}
		}
	}
	return "", false
}
