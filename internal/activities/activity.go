// Package activities holds the extracurricular activity catalog and the
// signup rules around it. The registry is the single owner of catalog state;
// transport layers (HTTP, MCP) call into it and never the other way around.
package activities

import "slices"

// Activity is a named extracurricular offering with descriptive metadata and
// a participant roster.
type Activity struct {
	// Name is the unique, case-sensitive catalog key.
	Name string
	// Description is free text shown to students.
	Description string
	// Schedule is free text and never machine-parsed.
	Schedule string
	// MaxParticipants is advisory capacity, displayed but not enforced.
	MaxParticipants int
	// Participants is the insertion-ordered roster of student emails.
	// The registry guarantees it holds no duplicates.
	Participants []string
}

// clone returns a copy whose participant slice shares no storage with the
// original.
func (a Activity) clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	return a
}

// Confirmation reports a successful signup.
type Confirmation struct {
	Activity string
	Email    string
	// Message is the user-facing confirmation line.
	Message string
}
