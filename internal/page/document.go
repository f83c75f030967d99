// Package page is a small typed document model: forms with named
// controls, plain elements addressed by id, a one-shot "structure ready"
// signal and a cancellable submit event.
//
// It plays the part the browser DOM plays for a page script. Everything
// runs synchronously on the caller's goroutine, and a Document is not
// safe for concurrent use: like a browser tab, one document serves one
// user interaction at a time. The HTTP layer builds a fresh document per
// request.
package page

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a form, control or element id does not
// exist in the document.
var ErrNotFound = errors.New("page: not found")

// Display values for Element.
const (
	DisplayNone  = "none"
	DisplayBlock = "block"
)

// ReadyHandler runs once, when the document structure is complete.
type ReadyHandler func(doc *Document) error

// Document is the root of the model.
type Document struct {
	Title string

	forms    map[string]*Form
	elements map[string]*Element

	readyHandlers []ReadyHandler
	ready         bool
}

// New returns an empty document.
func New(title string) *Document {
	return &Document{
		Title:    title,
		forms:    make(map[string]*Form),
		elements: make(map[string]*Element),
	}
}

// AddForm adds an empty form with the given id and returns it.
// Adding an id twice replaces the earlier form.
func (d *Document) AddForm(id string) *Form {
	f := &Form{ID: id, doc: d, controls: make(map[string]*Control)}
	d.forms[id] = f
	return f
}

// AddElement adds a hidden, empty element with the given id.
func (d *Document) AddElement(id string) *Element {
	el := &Element{ID: id, Display: DisplayNone}
	d.elements[id] = el
	return el
}

// Form looks a form up by id.
func (d *Document) Form(id string) (*Form, error) {
	f, ok := d.forms[id]
	if !ok {
		return nil, fmt.Errorf("%w: form %q", ErrNotFound, id)
	}
	return f, nil
}

// ElementByID looks a plain element up by id.
func (d *Document) ElementByID(id string) (*Element, error) {
	el, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: element %q", ErrNotFound, id)
	}
	return el, nil
}

// OnReady registers h for the structure-ready signal.
func (d *Document) OnReady(h ReadyHandler) {
	d.readyHandlers = append(d.readyHandlers, h)
}

// Ready fires the structure-ready signal. Handlers run in registration
// order and the first error stops dispatch. The signal fires at most
// once; later calls return nil without running anything.
func (d *Document) Ready() error {
	if d.ready {
		return nil
	}
	d.ready = true

	for _, h := range d.readyHandlers {
		if err := h(d); err != nil {
			return fmt.Errorf("ready handler: %w", err)
		}
	}
	return nil
}

// IsReady reports whether Ready has fired.
func (d *Document) IsReady() bool { return d.ready }

// Element is a plain, non-form node such as a message banner.
type Element struct {
	ID      string
	Text    string
	Display string
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) { e.Text = text }

// Show sets the element's display to block.
func (e *Element) Show() { e.Display = DisplayBlock }

// Hide sets the element's display to none.
func (e *Element) Hide() { e.Display = DisplayNone }

// Hidden reports whether the element is not displayed.
func (e *Element) Hidden() bool { return e.Display != DisplayBlock }
