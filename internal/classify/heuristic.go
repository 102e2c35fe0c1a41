package classify

import (
	"context"
	"log/slog"

	"anota/internal/extract"
	"anota/internal/model"
)

// Confidence constants for each heuristic branch. These are hand-tuned
// values carried over from real usage, not derived; recalibrate against
// observed accept/correct rates before treating them as load-bearing.
const (
	ConfidenceBalance      = 0.90
	ConfidenceVerb         = 0.85
	ConfidenceMerchantOnly = 0.55
	ConfidenceAmountOnly   = 0.35
	ConfidenceKeywordLog   = 0.80
	ConfidenceDefault      = 0.60
)

// DefaultCurrency is assumed when the text carries no currency marker.
const DefaultCurrency = "ARS"

// Heuristic is the deterministic fallback classifier. It runs when the
// remote tier is disabled, unreachable, or returned garbage.
type Heuristic struct {
	logger *slog.Logger
}

// NewHeuristic creates the heuristic classifier.
func NewHeuristic(logger *slog.Logger) *Heuristic {
	if logger == nil {
		logger = slog.Default()
	}
	return &Heuristic{logger: logger}
}

// Classify routes the text through an ordered chain of mutually exclusive
// branches. The order is behavior: amount+balance grammar, amount+verb,
// amount+merchant, bare amount, mental keywords, physical keywords, general
// default. Reordering changes results; the branch tests pin it.
func (h *Heuristic) Classify(_ context.Context, text string) (model.Result, error) {
	norm := extract.Normalize(text)
	amt := extract.FindAmount(norm)

	if amt != nil {
		wallet := extract.ResolveWallet(norm)

		if h.isBalanceStatement(norm) {
			return h.moneyResult(model.IntentAdjustBalance, ConfidenceBalance, norm, amt, wallet), nil
		}

		if intent, ok := h.verbIntent(norm); ok {
			return h.moneyResult(intent, ConfidenceVerb, norm, amt, wallet), nil
		}

		if intent, ok := h.merchantIntent(norm); ok {
			// Mid-tier confidence: the caller should ask for confirmation.
			return h.moneyResult(intent, ConfidenceMerchantOnly, norm, amt, wallet), nil
		}

		// An amount with neither verb nor merchant: logged, never
		// auto-committed.
		return h.moneyResult(model.IntentAddExpense, ConfidenceAmountOnly, norm, amt, wallet), nil
	}

	if term, ok := containsAny(norm, mentalKeywords); ok {
		return model.EntryResult(model.DomainMental, ConfidenceKeywordLog, text, map[string]string{"keyword": term}), nil
	}

	if term, ok := containsAny(norm, physicalKeywords); ok {
		return model.EntryResult(model.DomainPhysical, ConfidenceKeywordLog, text, map[string]string{"keyword": term}), nil
	}

	return model.EntryResult(model.DomainGeneral, ConfidenceDefault, text, nil), nil
}

// isBalanceStatement detects a current-holding statement: a balance verb
// co-occurring with a location preposition ("tengo 5000 en mp").
func (h *Heuristic) isBalanceStatement(text string) bool {
	if _, ok := containsAny(text, balanceVerbs); !ok {
		return false
	}
	_, ok := containsAny(text, locationPrepositions)
	return ok
}

// verbIntent maps an explicit money verb to an intent. A known recurring
// service upgrades the intent to add_subscription.
func (h *Heuristic) verbIntent(text string) (model.Intent, bool) {
	if _, ok := containsAny(text, subscriptionServices); ok {
		if h.hasMoneyVerb(text) {
			return model.IntentAddSubscription, true
		}
		return "", false
	}
	if _, ok := containsAny(text, incomeVerbs); ok {
		return model.IntentAddIncome, true
	}
	if _, ok := containsAny(text, expenseVerbs); ok {
		return model.IntentAddExpense, true
	}
	return "", false
}

func (h *Heuristic) hasMoneyVerb(text string) bool {
	if _, ok := containsAny(text, expenseVerbs); ok {
		return true
	}
	_, ok := containsAny(text, incomeVerbs)
	return ok
}

// merchantIntent recognizes a merchant or subscription name with no verb.
func (h *Heuristic) merchantIntent(text string) (model.Intent, bool) {
	if _, ok := containsAny(text, subscriptionServices); ok {
		return model.IntentAddSubscription, true
	}
	if _, ok := containsAny(text, merchantHints); ok {
		return model.IntentAddExpense, true
	}
	return "", false
}

func (h *Heuristic) moneyResult(intent model.Intent, confidence float64, norm string, amt *extract.Amount, wallet *extract.Wallet) model.Result {
	payload := model.MoneyPayload{
		Amount:         amt.Value,
		Currency:       DefaultCurrency,
		IsSubscription: intent == model.IntentAddSubscription,
	}

	strip := []string{amt.Raw}
	if wallet != nil {
		payload.Wallet = wallet.Name
		strip = append(strip, wallet.Token)
	}
	payload.Description = extract.StripTokens(norm, strip...)

	if merchant, ok := containsAny(norm, subscriptionServices); ok {
		payload.Merchant = merchant
	} else if merchant, ok := containsAny(norm, merchantHints); ok {
		payload.Merchant = merchant
	}

	h.logger.Debug("heuristic classification",
		"intent", intent,
		"confidence", confidence,
		"amount", amt.Value)

	return model.MoneyResult(intent, confidence, payload)
}
