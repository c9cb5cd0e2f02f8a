package models

// Side names which dataset a recall error is missing from.
type Side string

const (
	SideTruth     Side = "truth"
	SideCandidate Side = "candidate"
)

// Rate converts an error or hit count into a percentage of totalMatches.
// A run with no matches reports 0 for every rate; rates never divide by
// zero.
func Rate(count, totalMatches int) float64 {
	if totalMatches == 0 {
		return 0
	}
	return float64(count) / float64(totalMatches) * 100
}

// PeopleReport measures how precisely matched individuals' names agree.
type PeopleReport struct {
	EntriesCompared    int                 `json:"entries_compared"`
	TotalMatches       int                 `json:"total_matches"`
	PreciseMatches     int                 `json:"precise_matches"`
	PrecisionRate      float64             `json:"precision_rate"`
	MatchesByType      map[MatchType]int   `json:"matches_by_type"`
	UnmatchedTruth     int                 `json:"unmatched_truth"`
	UnmatchedCandidate int                 `json:"unmatched_candidate"`
	Details            []PeopleEntryDetail `json:"details"`
}

// PeopleEntryDetail holds the literal match outcome for one entry.
type PeopleEntryDetail struct {
	EntryKey           string         `json:"entry_key"`
	Matches            []MatchPair    `json:"matches"`
	Imprecise          []NameMismatch `json:"imprecise,omitempty"`
	UnmatchedTruth     []string       `json:"unmatched_truth,omitempty"`
	UnmatchedCandidate []string       `json:"unmatched_candidate,omitempty"`
}

// NameMismatch is a matched pair whose canonical names disagree.
type NameMismatch struct {
	TruthName     string `json:"truth_name"`
	CandidateName string `json:"candidate_name"`
}

// ReferenceReport measures cross-reference agreement on matched pairs.
type ReferenceReport struct {
	EntriesCompared    int                    `json:"entries_compared"`
	TotalMatches       int                    `json:"total_matches"`
	RecallErrors       int                    `json:"recall_errors"`
	PrecisionErrors    int                    `json:"precision_errors"`
	RecallErrorRate    float64                `json:"recall_error_rate"`
	PrecisionErrorRate float64                `json:"precision_error_rate"`
	Details            []ReferenceEntryDetail `json:"details"`
}

// ReferenceEntryDetail lists the reference disagreements in one entry.
type ReferenceEntryDetail struct {
	EntryKey        string                    `json:"entry_key"`
	RecallErrors    []ReferenceRecallError    `json:"recall_errors,omitempty"`
	PrecisionErrors []ReferencePrecisionError `json:"precision_errors,omitempty"`
}

// ReferenceRecallError records a cardinality mismatch between the two
// reference sets of a matched pair.
type ReferenceRecallError struct {
	PersonName        string   `json:"person_name"`
	MissingReferences []string `json:"missing_references,omitempty"`
	ExtraReferences   []string `json:"extra_references,omitempty"`
	ExpectedCount     int      `json:"expected_count"`
	ActualCount       int      `json:"actual_count"`
}

// ReferencePrecisionError records equal-sized reference sets with
// differing contents.
type ReferencePrecisionError struct {
	PersonName    string   `json:"person_name"`
	TruthOnly     []string `json:"truth_only,omitempty"`
	CandidateOnly []string `json:"candidate_only,omitempty"`
}

// RelationshipReport measures role-letter agreement of relationship
// labels on matched pairs.
type RelationshipReport struct {
	EntriesCompared int                       `json:"entries_compared"`
	TotalMatches    int                       `json:"total_matches"`
	RecallErrors    int                       `json:"recall_errors"`
	RecallErrorRate float64                   `json:"recall_error_rate"`
	Details         []RelationshipEntryDetail `json:"details"`
}

// RelationshipEntryDetail lists label disagreements in one entry.
type RelationshipEntryDetail struct {
	EntryKey     string                 `json:"entry_key"`
	RecallErrors []RelationshipMismatch `json:"recall_errors,omitempty"`
}

// RelationshipMismatch records the literal labels and their compared
// role suffixes.
type RelationshipMismatch struct {
	PersonName     string `json:"person_name"`
	TruthLabel     string `json:"truth_label"`
	CandidateLabel string `json:"candidate_label"`
	TruthRole      string `json:"truth_role"`
	CandidateRole  string `json:"candidate_role"`
}

// EventReport measures life-event agreement on matched pairs, including
// marriage events resolved through spouse families.
type EventReport struct {
	EntriesCompared    int                `json:"entries_compared"`
	TotalMatches       int                `json:"total_matches"`
	RecallErrors       int                `json:"recall_errors"`
	PrecisionErrors    int                `json:"precision_errors"`
	RecallErrorRate    float64            `json:"recall_error_rate"`
	PrecisionErrorRate float64            `json:"precision_error_rate"`
	Details            []EventEntryDetail `json:"details"`
}

// EventEntryDetail lists the event disagreements in one entry.
type EventEntryDetail struct {
	EntryKey        string                `json:"entry_key"`
	RecallErrors    []EventRecallError    `json:"recall_errors,omitempty"`
	PrecisionErrors []EventPrecisionError `json:"precision_errors,omitempty"`
}

// EventRecallError records an event present on only one side, or a
// marriage-count mismatch (ExpectedCount/ActualCount set, MissingFrom
// empty).
type EventRecallError struct {
	PersonName    string    `json:"person_name"`
	Event         EventKind `json:"event"`
	MissingFrom   Side      `json:"missing_from,omitempty"`
	ExpectedCount int       `json:"expected_count,omitempty"`
	ActualCount   int       `json:"actual_count,omitempty"`
}

// EventPrecisionError records an event present on both sides with
// differing date or place strings.
type EventPrecisionError struct {
	PersonName     string    `json:"person_name"`
	Event          EventKind `json:"event"`
	Fields         []string  `json:"fields"`
	TruthDate      string    `json:"truth_date,omitempty"`
	CandidateDate  string    `json:"candidate_date,omitempty"`
	TruthPlace     string    `json:"truth_place,omitempty"`
	CandidatePlace string    `json:"candidate_place,omitempty"`
}

// ComparisonResult bundles the four facet reports of one run.
type ComparisonResult struct {
	People        *PeopleReport       `json:"people"`
	References    *ReferenceReport    `json:"references"`
	Relationships *RelationshipReport `json:"relationships"`
	Events        *EventReport        `json:"events"`
}

// ComparisonRequest asks the service to compare two uploaded datasets.
type ComparisonRequest struct {
	TruthID     string `json:"truth_id" validate:"required"`
	CandidateID string `json:"candidate_id" validate:"required"`
}
