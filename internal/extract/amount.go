// Package extract provides pure text extraction over normalized Spanish
// free-form input: amount parsing and wallet resolution.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount is a decimal quantity together with the token it was parsed from.
type Amount struct {
	Raw   string
	Value float64
}

// Numeric conventions, in priority order. The k shorthand is tried before
// grouped thousands so "50k" never parses as a plain 50.
var (
	kSuffixRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)k$`)
	groupedRe = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	plainRe   = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
)

// Normalize prepares raw user text for extraction and classification.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokens splits normalized text on whitespace.
func Tokens(text string) []string {
	return strings.Fields(text)
}

// FindAmount scans tokens left to right and returns the first one that parses
// under a supported numeric convention. When the text holds several numbers,
// the first valid one wins regardless of magnitude; callers relying on a
// different pick must not exist. Returns nil when no number is found.
func FindAmount(text string) *Amount {
	for _, tok := range Tokens(text) {
		cleaned := cleanToken(tok)
		if cleaned == "" {
			continue
		}
		if v, ok := parseNumeric(cleaned); ok {
			return &Amount{Raw: tok, Value: v}
		}
	}
	return nil
}

// StripTokens removes every occurrence of the given tokens from the text,
// leaving the residual description used by downstream heuristics.
func StripTokens(text string, remove ...string) string {
	if len(remove) == 0 {
		return text
	}
	drop := make(map[string]struct{}, len(remove))
	for _, r := range remove {
		drop[r] = struct{}{}
	}
	var kept []string
	for _, tok := range Tokens(text) {
		if _, ok := drop[tok]; ok {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// cleanToken strips currency markers and trailing punctuation so "$1.500,"
// and "1.500" parse identically.
func cleanToken(tok string) string {
	tok = strings.TrimPrefix(tok, "$")
	tok = strings.TrimRight(tok, ".,;:!?")
	return tok
}

func parseNumeric(tok string) (float64, bool) {
	if m := kSuffixRe.FindStringSubmatch(tok); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			return 0, false
		}
		return v * 1000, true
	}
	if groupedRe.MatchString(tok) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ".", ""), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	if plainRe.MatchString(tok) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
