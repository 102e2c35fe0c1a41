package cli

import (
	"fmt"
	"strings"

	"anota/internal/model"
)

// ConfirmThreshold gates auto-commit: results at or above it are committed
// without asking, anything below is rendered as a confirmation request.
const ConfirmThreshold = 0.80

var domainLabels = map[model.Domain]string{
	model.DomainMoney:    "Plata",
	model.DomainMental:   "Ánimo",
	model.DomainPhysical: "Actividad",
	model.DomainGeneral:  "Nota",
}

// RenderResult formats a routing result for the chat output.
func RenderResult(r model.Result) string {
	var b strings.Builder

	if r.OutOfScope {
		b.WriteString(ErrorStyle.Render("Eso queda fuera de lo que anoto."))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Contame algo tuyo: un gasto, cómo andás, qué hiciste."))
		return b.String()
	}

	label := domainLabels[r.Domain]
	b.WriteString(TitleStyle.Render(label))
	b.WriteString("\n")

	if r.IsMoney() {
		m := r.Money
		line := fmt.Sprintf("%s %s %.2f", string(r.Intent), m.Currency, m.Amount)
		b.WriteString(BoldStyle.Render(line))
		b.WriteString("\n")
		if m.Merchant != "" {
			b.WriteString(fmt.Sprintf("Comercio: %s\n", m.Merchant))
		}
		if m.Wallet != "" {
			b.WriteString(fmt.Sprintf("Billetera: %s\n", m.Wallet))
		}
		if m.CategoryID != "" {
			b.WriteString(fmt.Sprintf("Categoría: %s\n", m.CategoryID))
		}
		if m.Description != "" {
			b.WriteString(SubtleStyle.Render(m.Description))
			b.WriteString("\n")
		}
	} else if r.Entry != nil {
		b.WriteString(r.Entry.Text)
		b.WriteString("\n")
	}

	confidence := fmt.Sprintf("confianza %.2f", r.Confidence)
	if r.Confidence >= ConfirmThreshold {
		b.WriteString(SuccessStyle.Render(confidence))
	} else {
		b.WriteString(WarningStyle.Render(confidence + " — ¿lo guardo así?"))
	}

	return b.String()
}
