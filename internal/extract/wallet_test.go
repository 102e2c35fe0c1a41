package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWallet(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantToken string
		wantNil   bool
	}{
		{name: "alias maps to canonical name", text: "gasté 1000 en mp", wantName: "Mercado Pago", wantToken: "mp"},
		{name: "full name containment", text: "pagué con mercadopago", wantName: "Mercado Pago", wantToken: "mercadopago"},
		{name: "containment inside longer token", text: "transferí desde brubank2", wantName: "Brubank", wantToken: "brubank2"},
		{name: "alias before vocabulary name wins", text: "mp o mercadopago da igual", wantName: "Mercado Pago", wantToken: "mp"},
		{name: "cash keyword", text: "pagué 500 en efectivo", wantName: "Efectivo", wantToken: "efectivo"},
		{name: "unknown wallet stays absent", text: "gasté 1000 en el kiosco", wantNil: true},
		{name: "no guessing on empty text", text: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWallet(tt.text)
			if tt.wantNil {
				assert.Nil(t, w)
				return
			}
			require.NotNil(t, w)
			assert.Equal(t, tt.wantName, w.Name)
			assert.Equal(t, tt.wantToken, w.Token)
		})
	}
}

func TestResolveWallet_AliasPrecedesContainment(t *testing.T) {
	// "uala" resolves through the alias table even though "ualá" could also
	// be hit by containment elsewhere in the text.
	w := ResolveWallet("uala y después ualá")
	require.NotNil(t, w)
	assert.Equal(t, "Ualá", w.Name)
	assert.Equal(t, "uala", w.Token)
}
