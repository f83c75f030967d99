// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// the page model, the form logic and the HTTP handlers can all import
// types without depending on each other.
package types

// StandingOption is one entry of the class standing dropdown.
//
// Code is the machine-readable value submitted with the form,
// DisplayText is the label the user sees.
type StandingOption struct {
	Code        string `json:"code"`
	DisplayText string `json:"displayText"`
}

// standings is the only static dataset. It is an array, not a slice, so
// nothing outside this package can append to or reorder it.
var standings = [...]StandingOption{
	{Code: "f", DisplayText: "Freshman"},
	{Code: "so", DisplayText: "Sophomore"},
	{Code: "jr", DisplayText: "Junior"},
	{Code: "sr", DisplayText: "Senior"},
	{Code: "ss", DisplayText: "Super Senior!"},
}

// Standings returns the class standings in display order.
// The returned slice is a fresh copy; mutating it has no effect on
// later calls.
func Standings() []StandingOption {
	out := make([]StandingOption, len(standings))
	copy(out, standings[:])
	return out
}

// Names of the person form controls.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldStanding  = "standing"
	FieldAge       = "age"
	FieldEmail     = "email"
)

var requiredFields = [...]string{
	FieldFirstName,
	FieldLastName,
	FieldStanding,
	FieldAge,
	FieldEmail,
}

// RequiredFields returns the names of the controls that must be
// non-blank, in the order validation feedback is applied.
func RequiredFields() []string {
	out := make([]string, len(requiredFields))
	copy(out, requiredFields[:])
	return out
}

// Person is the JSON shape accepted by the validation API.
//
// Every field is a string because the values are checked exactly as the
// browser would see them: raw text, before any type conversion.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Standing  string `json:"standing"`
	Age       string `json:"age"`
	Email     string `json:"email"`
}

// Values converts p into the name → values map a submitted HTML form
// produces, so API and browser submissions run through the same path.
func (p Person) Values() map[string][]string {
	return map[string][]string{
		FieldFirstName: {p.FirstName},
		FieldLastName:  {p.LastName},
		FieldStanding:  {p.Standing},
		FieldAge:       {p.Age},
		FieldEmail:     {p.Email},
	}
}
