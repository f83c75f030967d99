package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageView struct {
	Title    string
	Form     *Form
	Controls []*Control
	Banner   *Element
}

// Render writes the HTML for one form of doc, with the element bannerID
// shown above it. Field classes, values and the banner state are
// rendered exactly as the model holds them.
func Render(w io.Writer, doc *Document, formID, bannerID string) error {
	form, err := doc.Form(formID)
	if err != nil {
		return fmt.Errorf("page.Render: %w", err)
	}
	banner, err := doc.ElementByID(bannerID)
	if err != nil {
		return fmt.Errorf("page.Render: %w", err)
	}

	view := pageView{
		Title:    doc.Title,
		Form:     form,
		Controls: form.Controls(),
		Banner:   banner,
	}
	if err := templates.ExecuteTemplate(w, "page.html", view); err != nil {
		return fmt.Errorf("page.Render: execute: %w", err)
	}
	return nil
}

// RenderSubmitted writes the confirmation shown after an accepted
// submission.
func RenderSubmitted(w io.Writer, title string) error {
	if err := templates.ExecuteTemplate(w, "submitted.html", struct{ Title string }{title}); err != nil {
		return fmt.Errorf("page.RenderSubmitted: execute: %w", err)
	}
	return nil
}
