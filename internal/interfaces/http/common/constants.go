package common

const (
	// MaxShortFieldRunes bounds every short user-supplied field before it is
	// embedded in an email body.
	MaxShortFieldRunes = 2000
	// MaxMessageRunes bounds the main free-text message.
	MaxMessageRunes = 8000
	// MaxSubjectRunes bounds the derived email subject.
	MaxSubjectRunes = 200
	// MaxIntakeRequestBody limits JSON request bodies for the intake endpoints.
	MaxIntakeRequestBody = 1 << 20
)
