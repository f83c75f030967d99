package page

import "fmt"

// Control kinds. They map one-to-one to the rendered input type.
const (
	KindText   = "text"
	KindNumber = "number"
	KindEmail  = "email"
	KindSelect = "select"
)

// Option is one entry of a select control.
type Option struct {
	Value string
	Text  string
}

// Control is a named form control.
type Control struct {
	Name      string
	Label     string
	Kind      string
	Value     string
	ClassName string
	Options   []Option
}

// AppendOption adds o after the existing options. Insertion order is
// display order.
func (c *Control) AppendOption(o Option) {
	c.Options = append(c.Options, o)
}

// Selected reports whether o is the option currently chosen.
func (c *Control) Selected(o Option) bool {
	return c.Kind == KindSelect && c.Value != "" && c.Value == o.Value
}

// SubmitHandler handles one submission attempt.
type SubmitHandler func(evt *SubmitEvent) error

// Form is an ordered set of named controls plus its submit listeners.
type Form struct {
	ID string

	doc      *Document
	controls map[string]*Control
	order    []string
	handlers []SubmitHandler
}

// Document returns the document that owns the form.
func (f *Form) Document() *Document { return f.doc }

// AddControl appends a control to the form and returns it.
func (f *Form) AddControl(name, label, kind string) *Control {
	c := &Control{Name: name, Label: label, Kind: kind}
	if _, exists := f.controls[name]; !exists {
		f.order = append(f.order, name)
	}
	f.controls[name] = c
	return c
}

// Elements looks a control up by its name attribute.
func (f *Form) Elements(name string) (*Control, error) {
	c, ok := f.controls[name]
	if !ok {
		return nil, fmt.Errorf("%w: control %q in form %q", ErrNotFound, name, f.ID)
	}
	return c, nil
}

// Controls returns the controls in the order they were added.
func (f *Form) Controls() []*Control {
	out := make([]*Control, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.controls[name])
	}
	return out
}

// AddEventListener appends h to the submit listeners. Listeners are not
// deduplicated: adding the same handler twice runs it twice.
func (f *Form) AddEventListener(h SubmitHandler) {
	f.handlers = append(f.handlers, h)
}

// Fill copies submitted values into the matching controls, taking the
// first value of each name. Unknown names are ignored and controls with
// no submitted value are reset to empty, as a browser would post them.
func (f *Form) Fill(values map[string][]string) {
	for _, name := range f.order {
		c := f.controls[name]
		c.Value = ""
		if v := values[name]; len(v) > 0 {
			c.Value = v[0]
		}
	}
}

// Values returns the current value of every control, keyed by name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.order))
	for _, name := range f.order {
		out[name] = f.controls[name].Value
	}
	return out
}

// Submit dispatches a submission attempt to every listener, in order.
// A listener error stops dispatch. The returned event tells the caller
// whether the default action (sending the form) was prevented.
func (f *Form) Submit() (*SubmitEvent, error) {
	evt := &SubmitEvent{Form: f}
	for _, h := range f.handlers {
		if err := h(evt); err != nil {
			return evt, fmt.Errorf("submit handler: %w", err)
		}
	}
	return evt, nil
}

// SubmitEvent is passed to submit listeners.
type SubmitEvent struct {
	Form *Form

	prevented bool
}

// PreventDefault stops the form from being sent.
func (e *SubmitEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *SubmitEvent) DefaultPrevented() bool { return e.prevented }
