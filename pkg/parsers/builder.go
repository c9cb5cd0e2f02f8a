// Package parsers assembles in-memory datasets from the source
// encodings. The Builder assigns dense dataset-wide integer IDs to
// people and families so every downstream lookup is integer-keyed.
package parsers

import (
	"fmt"
	"strconv"

	"github.com/Ramsey-B/fern/pkg/models"
)

// Family membership roles accepted by the parsers.
const (
	RoleHusband = "husband"
	RoleWife    = "wife"
	RoleChild   = "child"
)

// Builder accumulates one dataset while a parser walks its input.
type Builder struct {
	dataset      *models.Dataset
	familyIDs    map[string]int
	nextPersonID int
	nextFamilyID int
}

// NewBuilder creates an empty dataset builder.
func NewBuilder() *Builder {
	return &Builder{
		dataset: &models.Dataset{
			Entries:  make(map[string]*models.Entry),
			Persons:  make(map[int]*models.PersonRecord),
			Families: make(map[int]*models.FamilyRecord),
		},
		familyIDs:    make(map[string]int),
		nextPersonID: 1,
		nextFamilyID: 1,
	}
}

// StartEntry opens a new entry roster.
func (b *Builder) StartEntry(key string) (*models.Entry, error) {
	if key == "" {
		return nil, fmt.Errorf("entry key must not be empty")
	}
	if _, ok := b.dataset.Entries[key]; ok {
		return nil, fmt.Errorf("duplicate entry key %q", key)
	}
	entry := &models.Entry{Key: key}
	b.dataset.Entries[key] = entry
	return entry, nil
}

// AddPerson appends a person to an entry roster, records the
// relationship label for the new slot, and registers the person
// dataset-wide under a fresh integer ID.
func (b *Builder) AddPerson(entry *models.Entry, given, surname, label string) *models.PersonRecord {
	person := &models.PersonRecord{
		ID:       b.nextPersonID,
		Name:     models.Name{Given: given, Surname: surname},
		EntryKey: entry.Key,
	}
	b.nextPersonID++

	entry.Persons = append(entry.Persons, person)
	entry.Relationships = append(entry.Relationships, label)
	b.dataset.Persons[person.ID] = person

	return person
}

// family resolves a family key, creating the record on first sight.
func (b *Builder) family(key string) *models.FamilyRecord {
	if id, ok := b.familyIDs[key]; ok {
		return b.dataset.Families[id]
	}
	family := &models.FamilyRecord{ID: b.nextFamilyID}
	b.nextFamilyID++
	b.familyIDs[key] = family.ID
	b.dataset.Families[family.ID] = family
	return family
}

// LinkFamily attaches a person to a family in the given role.
func (b *Builder) LinkFamily(person *models.PersonRecord, familyKey, role string) error {
	family := b.family(familyKey)
	switch role {
	case RoleHusband:
		family.HusbandID = person.ID
	case RoleWife:
		family.WifeID = person.ID
	case RoleChild:
		family.ChildIDs = append(family.ChildIDs, person.ID)
	default:
		return fmt.Errorf("unknown family role %q", role)
	}
	person.FamilyIDs = append(person.FamilyIDs, family.ID)
	return nil
}

// SetMarriage records the marriage event of a family.
func (b *Builder) SetMarriage(familyKey string, event models.LifeEvent) {
	b.family(familyKey).Marriage = event
}

// Dataset returns the assembled dataset.
func (b *Builder) Dataset() *models.Dataset {
	return b.dataset
}

// Event builds a life event from its date and place strings, extracting
// the year from the date.
func Event(date, place string) models.LifeEvent {
	return models.LifeEvent{
		Date:  date,
		Place: place,
		Year:  ExtractYear(date),
	}
}

// ExtractYear pulls the first four-digit run out of a date string. The
// full date grammar belongs to the date parser; the engine only needs
// the year, with 0 meaning unknown.
func ExtractYear(date string) int {
	digits := 0
	for i := 0; i <= len(date); i++ {
		if i < len(date) && date[i] >= '0' && date[i] <= '9' {
			digits++
			continue
		}
		if digits == 4 {
			year, err := strconv.Atoi(date[i-4 : i])
			if err == nil {
				return year
			}
		}
		digits = 0
	}
	return 0
}
