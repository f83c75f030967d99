// Package person contains the HTTP handlers for the person form page.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Each exported function receives its dependencies (the metrics) once,
// at route registration, and returns the handler that runs on every
// request:
//
//	router.HandleFunc("POST /", person.Submit(m))
//
// Every request builds a fresh page document, so no state is shared
// between requests.
package person

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/person-form/internal/metrics"
	"github.com/aanand-mishra/person-form/internal/page"
	"github.com/aanand-mishra/person-form/internal/personform"
	"github.com/aanand-mishra/person-form/internal/types"
	"github.com/aanand-mishra/person-form/internal/utils/response"
)

// SubmittedPath is where an accepted submission is redirected.
const SubmittedPath = "/submitted"

// NewRouter registers every route on a fresh ServeMux.
//
// Route table:
//
//	GET  /               → the empty person form
//	POST /               → submit the form
//	GET  /submitted      → confirmation after an accepted submission
//	GET  /api/standings  → the class standing options
//	POST /api/validate   → run a submission attempt on JSON values
//	GET  /metrics        → Prometheus metrics
func NewRouter(m *metrics.Metrics) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", Show())
	router.HandleFunc("POST /{$}", Submit(m))
	router.HandleFunc("GET "+SubmittedPath, Submitted())
	router.HandleFunc("GET /api/standings", Standings())
	router.HandleFunc("POST /api/validate", Validate(m))
	router.Handle("GET /metrics", m.Handler())

	return router
}

// ─────────────────────────────────────────────────────────────────────────────
// Show handles GET /
// Loads a fresh document (the ready signal fills the standing dropdown)
// and renders it.
// ─────────────────────────────────────────────────────────────────────────────
func Show() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := personform.Load()
		if err != nil {
			slog.Error("error loading form", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}

		writePage(w, http.StatusOK, doc)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit handles POST /
// Runs a submission attempt with the posted form values.
//
//	blocked  → 422, the form re-rendered with field markers and the banner
//	accepted → 303 redirect to /submitted
//
// ─────────────────────────────────────────────────────────────────────────────
func Submit(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := personform.Attempt(r.PostForm)
		if err != nil {
			slog.Error("error submitting form", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}
		m.ObserveSubmission(res.Valid, res.InvalidFields())

		if !res.Valid {
			slog.Info("submission blocked",
				slog.Any("invalid_fields", res.InvalidFields()))
			writePage(w, http.StatusUnprocessableEntity, res.Document)
			return
		}

		slog.Info("submission accepted",
			slog.String("standing", r.PostForm.Get(types.FieldStanding)))
		http.Redirect(w, r, SubmittedPath, http.StatusSeeOther)
	}
}

// Submitted handles GET /submitted.
func Submitted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := response.WriteHTML(w, http.StatusOK, func(out io.Writer) error {
			return page.RenderSubmitted(out, personform.Title)
		})
		if err != nil {
			slog.Error("error rendering page", slog.String("error", err.Error()))
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Standings handles GET /api/standings
//
// Success response (200 OK):
//
//	[ { "code": "f", "displayText": "Freshman" }, ... ]
//
// ─────────────────────────────────────────────────────────────────────────────
func Standings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, types.Standings())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Validate handles POST /api/validate
// Runs the same submission attempt as POST / on a JSON body.
//
// Request body (JSON):
//
//	{ "firstName": "Ann", "lastName": "", "standing": "jr", "age": "20", "email": "a@b.com" }
//
// Responses:
//
//	200 OK                    — { "valid": true, "fields": [...] }
//	400 Bad Request           — empty body or malformed JSON
//	422 Unprocessable Entity  — { "status": "error", "error": "field lastName is required", "fields": [...] }
//
// ─────────────────────────────────────────────────────────────────────────────
func Validate(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p types.Person

		err := json.NewDecoder(r.Body).Decode(&p)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		res, err := personform.Attempt(p.Values())
		if err != nil {
			slog.Error("error validating form", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}
		m.ObserveSubmission(res.Valid, res.InvalidFields())

		if !res.Valid {
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(res.InvalidFields(), res.Fields))
			return
		}

		response.WriteJSON(w, http.StatusOK, res)
	}
}

func writePage(w http.ResponseWriter, status int, doc *page.Document) {
	err := response.WriteHTML(w, status, func(out io.Writer) error {
		return page.Render(out, doc, personform.FormID, personform.ErrorMessageID)
	})
	if err != nil {
		slog.Error("error rendering page", slog.String("error", err.Error()))
	}
}
