package personform

import (
	"fmt"

	"github.com/aanand-mishra/person-form/internal/page"
	"github.com/aanand-mishra/person-form/internal/types"
)

// FieldResult is the outcome of one required-field check.
type FieldResult struct {
	Name      string `json:"name"`
	Valid     bool   `json:"valid"`
	ClassName string `json:"className"`
}

// Result describes one submission attempt.
type Result struct {
	// Valid is true when the submission was allowed through.
	Valid  bool          `json:"valid"`
	Fields []FieldResult `json:"fields"`
	// Banner is the error banner text, empty while it is hidden.
	Banner string `json:"banner,omitempty"`

	// Document is the page after the attempt, ready to be rendered.
	Document *page.Document `json:"-"`
}

// InvalidFields returns the names of the fields that failed, in
// validation order.
func (r Result) InvalidFields() []string {
	var names []string
	for _, f := range r.Fields {
		if !f.Valid {
			names = append(names, f.Name)
		}
	}
	return names
}

// Load builds a fresh person form document and fires its ready signal.
func Load() (*page.Document, error) {
	doc := NewDocument()
	if err := doc.Ready(); err != nil {
		return nil, fmt.Errorf("personform.Load: %w", err)
	}
	return doc, nil
}

// Attempt loads the page, fills the form with values and submits it.
func Attempt(values map[string][]string) (Result, error) {
	doc, err := Load()
	if err != nil {
		return Result{}, err
	}
	form, err := doc.Form(FormID)
	if err != nil {
		return Result{}, fmt.Errorf("personform.Attempt: %w", err)
	}

	form.Fill(values)

	evt, err := form.Submit()
	if err != nil {
		return Result{}, fmt.Errorf("personform.Attempt: %w", err)
	}

	res := Result{Valid: !evt.DefaultPrevented(), Document: doc}
	for _, name := range types.RequiredFields() {
		field, err := form.Elements(name)
		if err != nil {
			return Result{}, fmt.Errorf("personform.Attempt: %w", err)
		}
		res.Fields = append(res.Fields, FieldResult{
			Name:      name,
			Valid:     field.ClassName == ClassValid,
			ClassName: field.ClassName,
		})
	}

	banner, err := doc.ElementByID(ErrorMessageID)
	if err != nil {
		return Result{}, fmt.Errorf("personform.Attempt: %w", err)
	}
	if !banner.Hidden() {
		res.Banner = banner.Text
	}
	return res, nil
}
