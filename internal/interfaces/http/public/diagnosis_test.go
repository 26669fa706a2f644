package public

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDiagnosisBody() map[string]any {
	return map[string]any{
		"track":   "website",
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"consent": true,
		"answers": map[string]string{
			"goal":    "meer-reserveringen",
			"huidige": "verouderde site",
		},
	}
}

func TestDiagnosisSuccessIncludesAnalysis(t *testing.T) {
	stub := &mailerStub{}
	h := newTestHandler(stub, testSMTPSettings())

	rec := postJSON(t, h, "/api/diagnosis", validDiagnosisBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.OK)
	assert.Contains(t, env.Analysis, "online vindbaarheid")

	require.Len(t, stub.sent, 1)
	msg := stub.sent[0]
	assert.Contains(t, msg.Subject, "Website & online zichtbaarheid")
	assert.Contains(t, msg.Subject, "Jane Doe")
	assert.Contains(t, msg.TextBody, "goal: meer-reserveringen")
	assert.Contains(t, msg.TextBody, "huidige: verouderde site")
}

func TestDiagnosisAnalysisPerTrack(t *testing.T) {
	cases := []struct {
		track    string
		fragment string
	}{
		{"website", "online vindbaarheid"},
		{"consulting", "branchecijfers"},
		{"catering", "haalbaarheid"},
	}

	for _, tc := range cases {
		stub := &mailerStub{}
		h := newTestHandler(stub, testSMTPSettings())

		body := validDiagnosisBody()
		body["track"] = tc.track
		rec := postJSON(t, h, "/api/diagnosis", body)

		require.Equal(t, http.StatusOK, rec.Code, tc.track)
		assert.Contains(t, decodeEnvelope(t, rec).Analysis, tc.fragment, tc.track)
	}
}

func TestDiagnosisUnknownTrack(t *testing.T) {
	stub := &mailerStub{}
	h := newTestHandler(stub, testSMTPSettings())

	body := validDiagnosisBody()
	body["track"] = "franchise"
	rec := postJSON(t, h, "/api/diagnosis", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Kies waarover de diagnose moet gaan.", decodeEnvelope(t, rec).Error)
	assert.Empty(t, stub.sent)
}

func TestDiagnosisMissingConsent(t *testing.T) {
	stub := &mailerStub{}
	h := newTestHandler(stub, testSMTPSettings())

	body := validDiagnosisBody()
	body["consent"] = false
	rec := postJSON(t, h, "/api/diagnosis", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Geef toestemming voor het verwerken van je gegevens.", decodeEnvelope(t, rec).Error)
}

func TestDiagnosisHoneypotFakesSuccess(t *testing.T) {
	stub := &mailerStub{}
	h := newTestHandler(stub, testSMTPSettings())

	body := validDiagnosisBody()
	body["honey"] = "gevuld"
	rec := postJSON(t, h, "/api/diagnosis", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.OK)
	assert.Empty(t, env.Analysis)
	assert.Empty(t, stub.sent)
}
