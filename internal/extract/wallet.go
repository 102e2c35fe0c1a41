package extract

import "strings"

// Wallet is a resolved payment provider: the canonical name plus the token
// it was matched from, so callers can strip it from the residual text.
type Wallet struct {
	Name  string
	Token string
}

// walletAliases maps exact shorthand tokens to canonical provider names.
// Aliases are unambiguous, so they take precedence over containment.
var walletAliases = map[string]string{
	"mp":       "Mercado Pago",
	"mpago":    "Mercado Pago",
	"uala":     "Ualá",
	"ualá":     "Ualá",
	"nx":       "Naranja X",
	"ppay":     "Personal Pay",
	"efvo":     "Efectivo",
	"transfer": "Transferencia",
}

// walletVocabulary maps lowercase substrings to canonical provider names.
// Containment can be ambiguous, so it only yields when no alias matched.
var walletVocabulary = []struct {
	key  string
	name string
}{
	{"mercadopago", "Mercado Pago"},
	{"mercado", "Mercado Pago"},
	{"brubank", "Brubank"},
	{"naranja", "Naranja X"},
	{"lemon", "Lemon"},
	{"personal", "Personal Pay"},
	{"efectivo", "Efectivo"},
	{"transferencia", "Transferencia"},
	{"debito", "Tarjeta de débito"},
	{"débito", "Tarjeta de débito"},
	{"credito", "Tarjeta de crédito"},
	{"crédito", "Tarjeta de crédito"},
}

// ResolveWallet returns the canonical wallet referenced in the text, or nil
// when no known wallet or alias appears. Resolution never guesses: per token
// (left to right) an exact alias lookup is tried before substring containment
// against the vocabulary, and the first hit wins.
func ResolveWallet(text string) *Wallet {
	for _, tok := range Tokens(text) {
		if name, ok := walletAliases[tok]; ok {
			return &Wallet{Name: name, Token: tok}
		}
		for _, entry := range walletVocabulary {
			if strings.Contains(tok, entry.key) {
				return &Wallet{Name: entry.name, Token: tok}
			}
		}
	}
	return nil
}
