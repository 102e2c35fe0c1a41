package remote

import (
	"encoding/json"
	"fmt"
	"strings"

	"anota/internal/model"
)

// wirePayload mirrors the remote tier's enumerated response schema. Unknown
// enum members and out-of-range confidences are contract violations, handled
// as parse failures so the caller falls through to heuristics.
type wirePayload struct {
	Money      *wireMoney `json:"money"`
	Entry      *wireEntry `json:"entry"`
	Brain      string     `json:"brain"`
	Intent     string     `json:"intent"`
	Confidence float64    `json:"confidence"`
}

type wireMoney struct {
	Currency       string  `json:"currency"`
	Merchant       string  `json:"merchant"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	IsSubscription bool    `json:"is_subscription"`
}

type wireEntry struct {
	Text   string `json:"text"`
	Domain string `json:"domain"`
}

// validWireIntent checks the wire contract's intent enumeration. It is
// narrower than the model's: adjust_balance is heuristic-only and is never
// offered to the remote tier, so receiving it is a contract violation.
func validWireIntent(i model.Intent) bool {
	switch i {
	case model.IntentAddExpense, model.IntentAddIncome,
		model.IntentAddSubscription, model.IntentLogEntry, model.IntentUnknown:
		return true
	}
	return false
}

// ParseClassification extracts and validates the JSON object in the model's
// reply. Models sometimes wrap the object in prose or fencing despite the
// instruction, so everything outside the outermost braces is discarded
// before unmarshaling.
func ParseClassification(content string) (model.Result, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return model.Result{}, fmt.Errorf("no JSON object in response: %q", content)
	}

	var wire wirePayload
	if err := json.Unmarshal([]byte(content[start:end+1]), &wire); err != nil {
		return model.Result{}, fmt.Errorf("failed to parse classification JSON: %w", err)
	}

	return wire.toResult()
}

func (w wirePayload) toResult() (model.Result, error) {
	domain := model.Domain(w.Brain)
	if !model.ValidDomain(domain) {
		return model.Result{}, fmt.Errorf("invalid brain value %q", w.Brain)
	}

	intent := model.Intent(w.Intent)
	if !validWireIntent(intent) {
		return model.Result{}, fmt.Errorf("invalid intent value %q", w.Intent)
	}

	if w.Confidence < 0 || w.Confidence > 1 {
		return model.Result{}, fmt.Errorf("confidence %v outside [0,1]", w.Confidence)
	}

	if domain == model.DomainMoney {
		if w.Money == nil {
			return model.Result{}, fmt.Errorf("money domain without money payload")
		}
		currency := w.Money.Currency
		if currency == "" {
			currency = "ARS"
		}
		return model.MoneyResult(intent, w.Confidence, model.MoneyPayload{
			Amount:         w.Money.Amount,
			Currency:       currency,
			Merchant:       w.Money.Merchant,
			Description:    w.Money.Description,
			IsSubscription: w.Money.IsSubscription,
		}), nil
	}

	if w.Entry == nil {
		return model.Result{}, fmt.Errorf("%s domain without entry payload", domain)
	}

	result := model.EntryResult(domain, w.Confidence, w.Entry.Text, nil)
	result.Intent = intent
	return result, nil
}
