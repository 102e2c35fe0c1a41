package classify

import (
	"context"
	"testing"

	"anota/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristic_BranchOrder(t *testing.T) {
	h := NewHeuristic(nil)
	ctx := context.Background()

	tests := []struct {
		name           string
		text           string
		wantDomain     model.Domain
		wantIntent     model.Intent
		wantConfidence float64
	}{
		{
			name:           "balance statement beats money verb confidence",
			text:           "tengo 5000 en mp",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAdjustBalance,
			wantConfidence: ConfidenceBalance,
		},
		{
			name:           "amount with expense verb",
			text:           "gasté 1000 en mp",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddExpense,
			wantConfidence: ConfidenceVerb,
		},
		{
			name:           "amount with income verb",
			text:           "cobré 200k del laburo",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddIncome,
			wantConfidence: ConfidenceVerb,
		},
		{
			name:           "subscription service with verb",
			text:           "pagué netflix 5000",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddSubscription,
			wantConfidence: ConfidenceVerb,
		},
		{
			name:           "merchant without verb is the ask-to-confirm tier",
			text:           "uber 500",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddExpense,
			wantConfidence: ConfidenceMerchantOnly,
		},
		{
			name:           "subscription name without verb",
			text:           "netflix 5000",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddSubscription,
			wantConfidence: ConfidenceMerchantOnly,
		},
		{
			name:           "bare amount is logged but never auto-committed",
			text:           "1000 de ayer",
			wantDomain:     model.DomainMoney,
			wantIntent:     model.IntentAddExpense,
			wantConfidence: ConfidenceAmountOnly,
		},
		{
			name:           "mental keywords",
			text:           "ando medio ansioso hoy",
			wantDomain:     model.DomainMental,
			wantIntent:     model.IntentLogEntry,
			wantConfidence: ConfidenceKeywordLog,
		},
		{
			name:           "physical keywords",
			text:           "fui al gimnasio a hacer pesas",
			wantDomain:     model.DomainPhysical,
			wantIntent:     model.IntentLogEntry,
			wantConfidence: ConfidenceKeywordLog,
		},
		{
			name:           "general default",
			text:           "hoy me crucé con un viejo amigo",
			wantDomain:     model.DomainGeneral,
			wantIntent:     model.IntentLogEntry,
			wantConfidence: ConfidenceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Classify(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDomain, result.Domain)
			assert.Equal(t, tt.wantIntent, result.Intent)
			assert.InDelta(t, tt.wantConfidence, result.Confidence, 0.001)
		})
	}
}

func TestHeuristic_MoneyPayload(t *testing.T) {
	h := NewHeuristic(nil)

	result, err := h.Classify(context.Background(), "gasté 1000 en mp")
	require.NoError(t, err)
	require.True(t, result.IsMoney())

	// Round trip: the alias resolves to the canonical provider name, never
	// the raw token.
	assert.Equal(t, "Mercado Pago", result.Money.Wallet)
	assert.InDelta(t, 1000.0, result.Money.Amount, 0.001)
	assert.Equal(t, DefaultCurrency, result.Money.Currency)
	assert.Equal(t, "gasté en", result.Money.Description)
	assert.Nil(t, result.Entry)
}

func TestHeuristic_AmountBeforeKeywordBranches(t *testing.T) {
	h := NewHeuristic(nil)

	// A number forces the money branches even when an activity keyword is
	// present; the keyword branches only run without an amount.
	result, err := h.Classify(context.Background(), "corrí 5 vueltas")
	require.NoError(t, err)
	assert.Equal(t, model.DomainMoney, result.Domain)
	assert.InDelta(t, ConfidenceAmountOnly, result.Confidence, 0.001)
}

func TestHeuristic_SubscriptionFlag(t *testing.T) {
	h := NewHeuristic(nil)

	result, err := h.Classify(context.Background(), "pagué spotify 2000")
	require.NoError(t, err)
	require.True(t, result.IsMoney())
	assert.True(t, result.Money.IsSubscription)
	assert.Equal(t, "spotify", result.Money.Merchant)
}
