package models

import (
	"regexp"
	"sort"
)

// Entry is one dataset's roster of people from a single source page.
// Slot IDs are roster-local indexes into Persons; they exist only for
// matching and never leave a single comparison run.
type Entry struct {
	Key           string          `json:"key"`
	Persons       []*PersonRecord `json:"persons"`
	Relationships []string        `json:"relationships,omitempty"`
}

// Relationship returns the relationship label attached to the given slot,
// or "" when none was recorded.
func (e *Entry) Relationship(slot int) string {
	if slot < 0 || slot >= len(e.Relationships) {
		return ""
	}
	return e.Relationships[slot]
}

// Dataset is one fully loaded record collection: entries keyed by source
// page, plus dataset-wide person and family lookups.
type Dataset struct {
	Entries  map[string]*Entry     `json:"entries"`
	Persons  map[int]*PersonRecord `json:"persons"`
	Families map[int]*FamilyRecord `json:"families"`
}

// Entry returns the roster for an entry key, or nil.
func (d *Dataset) Entry(key string) *Entry {
	return d.Entries[key]
}

// SharedEntryKeys returns the entry keys present in both datasets, sorted
// so every comparison run walks entries in the same order.
func (d *Dataset) SharedEntryKeys(other *Dataset) []string {
	keys := make([]string, 0, len(d.Entries))
	for key := range d.Entries {
		if _, ok := other.Entries[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// SpouseMarriages returns the marriage events of the families in which
// the person appears as a spouse, in the record order of the person's
// family links.
func (d *Dataset) SpouseMarriages(p *PersonRecord) []LifeEvent {
	var events []LifeEvent
	for _, fid := range p.FamilyIDs {
		family, ok := d.Families[fid]
		if !ok || !family.IsSpouse(p.ID) {
			continue
		}
		events = append(events, family.Marriage)
	}
	return events
}

// relationshipLabel matches the label grammar <digit><letters>*. The
// digit encodes the traversal position and is ignored; only the letter
// suffix encodes the role.
var relationshipLabel = regexp.MustCompile(`^\d+([a-zA-Z]*)$`)

// RoleLetters extracts the role suffix of a relationship label.
// Malformed labels degrade to "" rather than erroring; labels come from
// an occasionally inconsistent collaborator.
func RoleLetters(label string) string {
	m := relationshipLabel.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	return m[1]
}
