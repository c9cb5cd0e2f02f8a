// Package models contains the record and report types shared by the
// matching and comparison engines.
package models

import "strings"

// Name is a personal name split into its compared components.
type Name struct {
	Given   string `json:"given"`
	Surname string `json:"surname"`
}

// String renders the name as "Given Surname" for report output.
func (n Name) String() string {
	return strings.TrimSpace(n.Given + " " + n.Surname)
}

// LifeEvent is a dated, placed event attached to a person or family.
// Year is extracted by the date parser; 0 means unknown.
type LifeEvent struct {
	Date  string `json:"date,omitempty"`
	Place string `json:"place,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// IsEmpty reports whether the event carries no data at all.
func (e LifeEvent) IsEmpty() bool {
	return e.Date == "" && e.Place == ""
}

// PersonRecord is one individual as extracted from a source page.
// Records are immutable once a dataset is built; the matcher never
// writes to them.
type PersonRecord struct {
	ID          int       `json:"id"`
	Name        Name      `json:"name"`
	Birth       LifeEvent `json:"birth,omitempty"`
	Death       LifeEvent `json:"death,omitempty"`
	Christening LifeEvent `json:"christening,omitempty"`
	Burial      LifeEvent `json:"burial,omitempty"`
	FamilyIDs   []int     `json:"family_ids,omitempty"`
	References  []string  `json:"references,omitempty"`
	EntryKey    string    `json:"entry_key"`
}

// EventKind names the four individual life events plus marriage.
type EventKind string

const (
	EventBirth       EventKind = "birth"
	EventDeath       EventKind = "death"
	EventChristening EventKind = "christening"
	EventBurial      EventKind = "burial"
	EventMarriage    EventKind = "marriage"
)

// Event returns the named individual life event. Marriage events live on
// FamilyRecord, not here.
func (p *PersonRecord) Event(kind EventKind) LifeEvent {
	switch kind {
	case EventBirth:
		return p.Birth
	case EventDeath:
		return p.Death
	case EventChristening:
		return p.Christening
	case EventBurial:
		return p.Burial
	default:
		return LifeEvent{}
	}
}

// IndividualEventKinds is the comparison order for per-person events.
var IndividualEventKinds = []EventKind{EventBirth, EventDeath, EventChristening, EventBurial}
