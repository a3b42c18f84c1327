// Package domain contains the value types of the literary dictionary.
package domain

// Term is a single dictionary entry: a literary device, genre or form.
// Terms are seeded once at startup and never mutated afterwards.
type Term struct {
	ID         int      `json:"id" validate:"gt=0"`
	Term       string   `json:"term" validate:"required"`
	Definition string   `json:"definition" validate:"required"`
	Etymology  string   `json:"etymology"`
	Genre      Genre    `json:"genre" validate:"required,genre"`
	Category   string   `json:"category"`
	Examples   []string `json:"examples"`
	Letter     string   `json:"letter" validate:"omitempty,letter"`
}

// Clone returns a copy that shares no slices with t.
func (t Term) Clone() Term {
	if t.Examples != nil {
		t.Examples = append([]string(nil), t.Examples...)
	}
	return t
}

// LetterGroup is one section of the alphabetical index.
type LetterGroup struct {
	Letter string `json:"letter"`
	Terms  []Term `json:"terms"`
}
