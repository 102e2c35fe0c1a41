// Package classify holds the deterministic classification tier: the scope
// guard and the Spanish keyword heuristics used when the remote tier is
// unavailable.
package classify

import "strings"

// The keyword tables below are data, not logic: every set is consumed by the
// same containsAny matcher so they stay independently testable and can be
// made user-extensible later.

// expenseVerbs signal an outgoing money event.
var expenseVerbs = []string{
	"gasté", "gaste", "pagué", "pague", "compré", "compre",
	"aboné", "abone", "puse", "saqué", "saque", "gastamos",
}

// incomeVerbs signal an incoming money event.
var incomeVerbs = []string{
	"cobré", "cobre", "gané", "gane", "ingresé", "ingrese",
	"recibí", "recibi", "me pagaron", "me depositaron", "me transfirieron",
}

// balanceVerbs imply a current holding rather than a transaction. A balance
// statement needs one of these plus a location preposition.
var balanceVerbs = []string{
	"tengo", "quedan", "queda", "hay", "me quedan", "me queda",
}

var locationPrepositions = []string{
	" en ", " en la ", " en el ",
}

// subscriptionServices is the closed set of known recurring services.
var subscriptionServices = []string{
	"netflix", "spotify", "disney", "hbo", "max", "prime",
	"youtube premium", "apple music", "icloud", "crunchyroll",
	"flow", "cablevision", "cablevisión", "personal flow",
}

// merchantHints are non-subscription merchant names recognized without a verb.
var merchantHints = []string{
	"uber", "cabify", "didi", "rappi", "pedidosya", "mcdonalds",
	"burger", "starbucks", "kiosco", "supermercado", "chino",
	"farmacia", "ferreteria", "ferretería", "verduleria", "verdulería",
	"carniceria", "carnicería", "panaderia", "panadería", "nafta", "ypf",
	"shell", "axion",
}

// mentalKeywords signal a mood or mental-state log.
var mentalKeywords = []string{
	"ansioso", "ansiosa", "ansiedad", "triste", "tristeza", "feliz",
	"contento", "contenta", "estresado", "estresada", "estres", "estrés",
	"deprimido", "deprimida", "angustia", "angustiado", "angustiada",
	"animo", "ánimo", "humor", "nervioso", "nerviosa", "tranquilo",
	"tranquila", "enojado", "enojada", "agotado", "agotada",
}

// physicalKeywords signal a physical-activity log.
var physicalKeywords = []string{
	"corrí", "corri", "caminé", "camine", "entrené", "entrene",
	"gimnasio", "gym", "pesas", "bici", "bicicleta", "nadé", "nade",
	"natación", "natacion", "futbol", "fútbol", "partido", "yoga",
	"pilates", "kilometros", "kilómetros", "km",
}

// containsAny reports whether text contains any of the given terms, together
// with the first term that matched.
func containsAny(text string, terms []string) (string, bool) {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return term, true
		}
	}
	return "", false
}
