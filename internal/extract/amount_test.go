package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAmount_Conventions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "k shorthand", text: "gasté 50k en el super", want: 50000},
		{name: "k shorthand with decimal", text: "me salió 1,5k", want: 1500},
		{name: "grouped thousands", text: "cobré 1.500.000 este mes", want: 1500000},
		{name: "single group", text: "pagué 1.500 de luz", want: 1500},
		{name: "plain integer", text: "gasté 500", want: 500},
		{name: "plain decimal comma", text: "puse 10,50 en la sube", want: 10.5},
		{name: "currency prefix stripped", text: "gasté $2000 en nafta", want: 2000},
		{name: "trailing punctuation stripped", text: "gasté 800.", want: 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt := FindAmount(Normalize(tt.text))
			require.NotNil(t, amt)
			assert.InDelta(t, tt.want, amt.Value, 0.001)
		})
	}
}

func TestFindAmount_FirstNumberWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "smaller number first", text: "gasté 200 y después 900000", want: 200},
		{name: "larger number first", text: "saqué 50k y me quedan 3", want: 50000},
		{name: "grouped before plain", text: "1.500.000 o 20", want: 1500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt := FindAmount(tt.text)
			require.NotNil(t, amt)
			assert.InDelta(t, tt.want, amt.Value, 0.001)
		})
	}
}

func TestFindAmount_NoNumber(t *testing.T) {
	tests := []string{
		"",
		"hoy fue un buen día",
		"me siento cansado",
	}

	for _, text := range tests {
		assert.Nil(t, FindAmount(text), "text: %q", text)
	}
}

func TestStripTokens(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		remove []string
		want   string
	}{
		{name: "strips amount token", text: "gasté 1000 en mp", remove: []string{"1000"}, want: "gasté en mp"},
		{name: "strips multiple tokens", text: "gasté 1000 en mp", remove: []string{"1000", "mp"}, want: "gasté en"},
		{name: "nothing to strip", text: "gasté plata", remove: []string{"500"}, want: "gasté plata"},
		{name: "no removals", text: "gasté plata", remove: nil, want: "gasté plata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTokens(tt.text, tt.remove...))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "gasté 500", Normalize("  Gasté 500  "))
}
