// Package personform is the person form page script: it fills the class
// standing dropdown when the document is ready and blocks submission
// while any required field is blank.
package personform

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/person-form/internal/page"
	"github.com/aanand-mishra/person-form/internal/types"
)

// Fixed ids, classes and messages of the person form page.
const (
	Title          = "JavaScript and Forms Demo"
	FormID         = "person-form"
	ErrorMessageID = "error-message"

	ClassValid   = "form-control"
	ClassInvalid = "form-control invalid-field"

	ErrorText = "Please provide values for the required fields!"
)

// validate is shared by every check; a *validator.Validate caches struct
// and tag metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "notblank" is not a baked-in tag, so register our own.
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("personform: register notblank: %v", err))
	}
	return v
}

// notBlank passes when the value still has characters after trimming
// leading and trailing whitespace. U+FEFF is trimmed as well, matching
// what a browser's String.prototype.trim strips.
func notBlank(fl validator.FieldLevel) bool {
	trimmed := strings.TrimFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	return len(trimmed) > 0
}

// NewDocument builds the host page: the person form with its five
// controls (standing starts with no options) and a hidden error banner.
// OnReady is already registered, so calling Ready on the result runs the
// initializer.
func NewDocument() *page.Document {
	doc := page.New(Title)

	form := doc.AddForm(FormID)
	form.AddControl(types.FieldFirstName, "First Name", page.KindText)
	form.AddControl(types.FieldLastName, "Last Name", page.KindText)
	form.AddControl(types.FieldStanding, "Class Standing", page.KindSelect)
	form.AddControl(types.FieldAge, "Age", page.KindNumber)
	form.AddControl(types.FieldEmail, "Email", page.KindEmail)
	for _, c := range form.Controls() {
		c.ClassName = ClassValid
	}

	doc.AddElement(ErrorMessageID)
	doc.OnReady(OnReady)
	return doc
}

// OnReady populates the standing select with one option per class
// standing, in order, then registers OnSubmit on the form.
func OnReady(doc *page.Document) error {
	form, err := doc.Form(FormID)
	if err != nil {
		return fmt.Errorf("OnReady: %w", err)
	}
	standing, err := form.Elements(types.FieldStanding)
	if err != nil {
		return fmt.Errorf("OnReady: %w", err)
	}

	for _, s := range types.Standings() {
		standing.AppendOption(page.Option{Value: s.Code, Text: s.DisplayText})
	}

	form.AddEventListener(OnSubmit)
	return nil
}

// OnSubmit runs on every submission attempt. When any required field is
// blank it shows the error banner and prevents the form from being sent.
func OnSubmit(evt *page.SubmitEvent) error {
	valid, err := ValidateForm(evt.Form)
	if err != nil {
		return fmt.Errorf("OnSubmit: %w", err)
	}
	if valid {
		return nil
	}

	errMsg, err := evt.Form.Document().ElementByID(ErrorMessageID)
	if err != nil {
		return fmt.Errorf("OnSubmit: %w", err)
	}
	errMsg.SetText(ErrorText)
	errMsg.Show()

	evt.PreventDefault()
	return nil
}

// ValidateForm checks every required field and reports whether all of
// them are non-blank. All fields are checked even after a failure, so
// each invalid field gets its marker in one pass.
func ValidateForm(form *page.Form) (bool, error) {
	valid := true
	for _, name := range types.RequiredFields() {
		field, err := form.Elements(name)
		if err != nil {
			return false, err
		}
		if !ValidateRequiredField(field) {
			slog.Debug("required field is blank", slog.String("field", name))
			valid = false
		}
	}
	return valid, nil
}

// ValidateRequiredField reports whether field holds a non-blank value
// and overwrites its class to match: ClassValid or ClassInvalid.
func ValidateRequiredField(field *page.Control) bool {
	valid := validate.Var(field.Value, "notblank") == nil

	if valid {
		field.ClassName = ClassValid
	} else {
		field.ClassName = ClassInvalid
	}
	return valid
}
