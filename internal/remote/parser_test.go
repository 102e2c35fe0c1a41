package remote

import (
	"testing"

	"anota/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification_Money(t *testing.T) {
	content := `{"brain":"money","intent":"add_expense","confidence":0.92,
		"money":{"amount":1500,"currency":"ARS","merchant":"chino","description":"super","is_subscription":false}}`

	result, err := ParseClassification(content)
	require.NoError(t, err)

	assert.Equal(t, model.DomainMoney, result.Domain)
	assert.Equal(t, model.IntentAddExpense, result.Intent)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)
	require.NotNil(t, result.Money)
	assert.InDelta(t, 1500.0, result.Money.Amount, 0.001)
	assert.Equal(t, "chino", result.Money.Merchant)
	assert.Nil(t, result.Entry)
}

func TestParseClassification_Entry(t *testing.T) {
	content := `{"brain":"mental","intent":"log_entry","confidence":0.8,
		"entry":{"text":"ando bajón","domain":"mental"}}`

	result, err := ParseClassification(content)
	require.NoError(t, err)

	assert.Equal(t, model.DomainMental, result.Domain)
	assert.Equal(t, model.IntentLogEntry, result.Intent)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "ando bajón", result.Entry.Text)
	assert.Nil(t, result.Money)
}

func TestParseClassification_ProseWrapped(t *testing.T) {
	content := "Claro, acá va:\n```json\n{\"brain\":\"general\",\"intent\":\"log_entry\",\"confidence\":0.6,\"entry\":{\"text\":\"nota\",\"domain\":\"general\"}}\n```"

	result, err := ParseClassification(content)
	require.NoError(t, err)
	assert.Equal(t, model.DomainGeneral, result.Domain)
}

func TestParseClassification_ContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no JSON at all", content: "no puedo clasificar eso"},
		{name: "unknown brain", content: `{"brain":"crypto","intent":"log_entry","confidence":0.5,"entry":{"text":"x","domain":"general"}}`},
		{name: "unknown intent", content: `{"brain":"money","intent":"transfer_funds","confidence":0.5,"money":{"amount":1}}`},
		{name: "heuristic-only intent is outside the wire enum", content: `{"brain":"money","intent":"adjust_balance","confidence":0.9,"money":{"amount":1}}`},
		{name: "confidence above one", content: `{"brain":"money","intent":"add_expense","confidence":1.5,"money":{"amount":1}}`},
		{name: "negative confidence", content: `{"brain":"money","intent":"add_expense","confidence":-0.1,"money":{"amount":1}}`},
		{name: "money domain without payload", content: `{"brain":"money","intent":"add_expense","confidence":0.9}`},
		{name: "entry domain without payload", content: `{"brain":"mental","intent":"log_entry","confidence":0.8}`},
		{name: "broken JSON", content: `{"brain":"money",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClassification(tt.content)
			assert.Error(t, err)
		})
	}
}
