package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSubmission(t *testing.T) {
	m := New()

	m.ObserveSubmission(true, nil)
	m.ObserveSubmission(false, []string{"lastName", "email"})
	m.ObserveSubmission(false, []string{"email"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeBlocked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invalidFields.WithLabelValues("lastName")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.invalidFields.WithLabelValues("email")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSubmission(false, []string{"age"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `personform_submissions_total{outcome="blocked"} 1`)
	assert.Contains(t, rec.Body.String(), `personform_invalid_fields_total{field="age"} 1`)
}
