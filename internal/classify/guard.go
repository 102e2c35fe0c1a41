package classify

import "anota/internal/model"

// deniedTerms flag messages aimed at the app's own implementation rather
// than personal-life logging. Any match rejects immediately; the guard runs
// before both classifier tiers and cannot be bypassed by either.
var deniedTerms = []string{
	"tu código", "tu codigo", "el código fuente", "codigo fuente",
	"dame el código", "dame el codigo", "cómo estás programada",
	"como estas programada", "cómo funcionás por dentro",
	"como funcionas por dentro", "tu prompt", "system prompt",
	"api key", "sql", "javascript", "typescript", "python",
	"escribime un programa", "escribí un programa", "escribi un programa",
	"hackear", "jailbreak",
}

// ScopeGuard pre-filters messages that are out of scope for the pipeline.
type ScopeGuard struct{}

// NewScopeGuard returns the deny-list based scope guard.
func NewScopeGuard() *ScopeGuard {
	return &ScopeGuard{}
}

// Reject reports whether the normalized text matches the deny-list, along
// with the term that triggered the rejection.
func (g *ScopeGuard) Reject(text string) (string, bool) {
	return containsAny(text, deniedTerms)
}

// Rejection is the terminal result for a policy rejection. OutOfScope marks
// it as policy-driven, distinct from a low-confidence classification, so the
// caller can render a different message.
func (g *ScopeGuard) Rejection() model.Result {
	return model.RejectedResult()
}
