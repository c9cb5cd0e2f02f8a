package models

// FamilyRecord links spouses and children by person ID and carries the
// marriage event. IDs are dataset-wide integers assigned at parse time,
// so every lookup is integer-keyed.
type FamilyRecord struct {
	ID        int       `json:"id"`
	HusbandID int       `json:"husband_id,omitempty"`
	WifeID    int       `json:"wife_id,omitempty"`
	ChildIDs  []int     `json:"child_ids,omitempty"`
	Marriage  LifeEvent `json:"marriage,omitempty"`
}

// IsSpouse reports whether the person is the husband or wife of this
// family. Spouse families are the ones whose marriage events are compared.
func (f *FamilyRecord) IsSpouse(personID int) bool {
	return f.HusbandID == personID || f.WifeID == personID
}
