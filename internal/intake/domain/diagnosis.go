package domain

import "strings"

// Track is the discriminant of the diagnosis wizard. The second step renders
// a different field set per track, so only these three values are
// representable.
type Track string

const (
	TrackWebsite    Track = "website"
	TrackConsulting Track = "consulting"
	TrackCatering   Track = "catering"
)

// Valid reports whether t is one of the three known tracks.
func (t Track) Valid() bool {
	switch t {
	case TrackWebsite, TrackConsulting, TrackCatering:
		return true
	}
	return false
}

// Diagnosis-specific field names.
const (
	FieldTrack     = "track"
	FieldGoal      = "goal"
	FieldFocusArea = "focusArea"
	FieldEventType = "eventType"
	FieldGuests    = "guests"
)

// DiagnosisSteps returns the three steps of the diagnosis wizard: track
// selection, a track-specific detail screen and the shared contact step.
func DiagnosisSteps() []Step {
	return []Step{
		{
			Name: "keuze",
			Validate: func(a *Answers) string {
				if !Track(strings.TrimSpace(a.Value(FieldTrack))).Valid() {
					return "Kies waarover de diagnose moet gaan."
				}
				return ""
			},
		},
		{
			Name: "detail",
			Validate: func(a *Answers) string {
				switch Track(strings.TrimSpace(a.Value(FieldTrack))) {
				case TrackWebsite:
					if !hasValue(a, FieldGoal) {
						return "Kies je doel voor de website."
					}
				case TrackConsulting:
					if !hasValue(a, FieldFocusArea) {
						return "Kies waar het advies zich op moet richten."
					}
				case TrackCatering:
					if !hasValue(a, FieldEventType) {
						return "Kies het soort gelegenheid."
					}
					if !hasValue(a, FieldGuests) {
						return "Vul het aantal gasten in."
					}
				default:
					return "Kies waarover de diagnose moet gaan."
				}
				return ""
			},
		},
		contactStep(),
	}
}

// NewDiagnosisWizard returns a fresh diagnosis wizard at step 0.
func NewDiagnosisWizard() *Wizard {
	return NewWizard(DiagnosisSteps())
}
