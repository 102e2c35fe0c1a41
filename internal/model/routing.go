// Package model defines the core data structures for the anota pipeline.
package model

// Domain is the life-area a logged entry belongs to.
type Domain string

// Domain constants.
const (
	DomainMoney    Domain = "money"
	DomainMental   Domain = "mental"
	DomainPhysical Domain = "physical"
	DomainGeneral  Domain = "general"
)

// Intent is the specific action implied by a message.
type Intent string

// Intent constants.
const (
	IntentAddExpense      Intent = "add_expense"
	IntentAddIncome       Intent = "add_income"
	IntentAddSubscription Intent = "add_subscription"
	IntentAdjustBalance   Intent = "adjust_balance"
	IntentLogEntry        Intent = "log_entry"
	IntentUnknown         Intent = "unknown"
)

// ValidDomain reports whether d is a member of the domain enumeration.
func ValidDomain(d Domain) bool {
	switch d {
	case DomainMoney, DomainMental, DomainPhysical, DomainGeneral:
		return true
	}
	return false
}

// MoneyPayload carries the money-domain fields of a routing result. Wallet
// holds the canonical payment-provider name when one was resolved, never a
// raw alias.
type MoneyPayload struct {
	Merchant       string  `json:"merchant,omitempty"`
	Description    string  `json:"description,omitempty"`
	Wallet         string  `json:"wallet,omitempty"`
	Currency       string  `json:"currency"`
	CategoryID     string  `json:"category_id,omitempty"`
	Amount         float64 `json:"amount"`
	IsSubscription bool    `json:"is_subscription,omitempty"`
}

// EntryPayload carries the log-entry fields of a routing result.
type EntryPayload struct {
	Meta   map[string]string `json:"meta,omitempty"`
	Text   string            `json:"text"`
	Domain Domain            `json:"domain"`
}

// Result is the unified output of classification, shared by the remote and
// heuristic tiers. Exactly one of Money or Entry is set, keyed by Intent:
// the add_* and adjust_balance intents carry Money, log_entry carries Entry,
// and an out-of-scope rejection carries neither.
type Result struct {
	Money      *MoneyPayload `json:"money,omitempty"`
	Entry      *EntryPayload `json:"entry,omitempty"`
	Domain     Domain        `json:"domain"`
	Intent     Intent        `json:"intent"`
	Confidence float64       `json:"confidence"`
	OutOfScope bool          `json:"out_of_scope,omitempty"`
}

// IsMoney reports whether the result carries a money payload.
func (r Result) IsMoney() bool {
	return r.Money != nil
}

// MoneyResult builds a money-domain result with its payload attached.
func MoneyResult(intent Intent, confidence float64, payload MoneyPayload) Result {
	return Result{
		Domain:     DomainMoney,
		Intent:     intent,
		Confidence: confidence,
		Money:      &payload,
	}
}

// EntryResult builds a log-entry result for the given domain.
func EntryResult(domain Domain, confidence float64, text string, meta map[string]string) Result {
	return Result{
		Domain:     domain,
		Intent:     IntentLogEntry,
		Confidence: confidence,
		Entry: &EntryPayload{
			Text:   text,
			Domain: domain,
			Meta:   meta,
		},
	}
}

// RejectedResult is the terminal result for a policy rejection: it is not an
// error and carries no payload.
func RejectedResult() Result {
	return Result{
		Domain:     DomainGeneral,
		Intent:     IntentUnknown,
		Confidence: 0,
		OutOfScope: true,
	}
}
