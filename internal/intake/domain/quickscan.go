package domain

import (
	"net/mail"
	"strings"
)

// Field names shared by the wizards and the submission payloads. These match
// the JSON keys the endpoints expect.
const (
	FieldReasonNow     = "reasonNow"
	FieldOutcome90     = "outcome90"
	FieldSuccessMetric = "successMetric"
	FieldRevenueFocus  = "revenueFocus"
	FieldPrimaryAction = "primaryAction"
	FieldLeaks         = "leaks"
	FieldTimeline      = "timeline"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldConsent       = "consent"
	FieldRemarks       = "remarks"
)

// Selection limits for the quick-scan multi-selects.
const (
	MaxRevenueFocus = 2
	MaxLeaks        = 3
)

func hasValue(a *Answers, field string) bool {
	return strings.TrimSpace(a.Value(field)) != ""
}

func validEmail(a *Answers) bool {
	value := strings.TrimSpace(a.Value(FieldEmail))
	if value == "" || len(value) > 254 {
		return false
	}
	_, err := mail.ParseAddress(value)
	return err == nil
}

// contactStep is the closing step every wizard shares: name, a valid email
// address and explicit consent.
func contactStep() Step {
	return Step{
		Name: "contact",
		Validate: func(a *Answers) string {
			if !hasValue(a, FieldName) {
				return "Vul je naam in."
			}
			if !validEmail(a) {
				return "Vul een geldig e-mailadres in."
			}
			if !a.Flag(FieldConsent) {
				return "Geef toestemming voor het verwerken van je gegevens."
			}
			return ""
		},
	}
}

// QuickScanSteps returns the four steps of the quick-scan wizard. Each
// validator checks its fields in a fixed order and reports the first gap.
func QuickScanSteps() []Step {
	return []Step{
		{
			Name: "aanleiding",
			Validate: func(a *Answers) string {
				if !hasValue(a, FieldReasonNow) {
					return "Kies wat er nu speelt in je zaak."
				}
				if !hasValue(a, FieldOutcome90) {
					return "Kies wat je over 90 dagen bereikt wilt hebben."
				}
				return ""
			},
		},
		{
			Name: "focus",
			Validate: func(a *Answers) string {
				if !hasValue(a, FieldSuccessMetric) {
					return "Kies waaraan je succes afmeet."
				}
				if len(a.Multi(FieldRevenueFocus)) == 0 {
					return "Kies minstens één omzetgebied."
				}
				if !hasValue(a, FieldPrimaryAction) {
					return "Kies je eerstvolgende actie."
				}
				return ""
			},
		},
		{
			Name: "lekken",
			Validate: func(a *Answers) string {
				if len(a.Multi(FieldLeaks)) == 0 {
					return "Kies minstens één kostenlek."
				}
				if !hasValue(a, FieldTimeline) {
					return "Kies een termijn."
				}
				return ""
			},
		},
		contactStep(),
	}
}

// NewQuickScanWizard returns a fresh quick-scan wizard at step 0.
func NewQuickScanWizard() *Wizard {
	return NewWizard(QuickScanSteps())
}
