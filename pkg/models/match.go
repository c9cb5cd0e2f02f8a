package models

// MatchType tags which matching phase produced a pair. Diagnostic only;
// the comparison facets treat all pairs alike.
type MatchType string

const (
	MatchExactNameUnique     MatchType = "exactNameUnique"
	MatchEventReference      MatchType = "eventReference"
	MatchRelationshipSimilar MatchType = "relationshipSimilar"
	MatchSimilarName         MatchType = "similarName"
	MatchExactNameResolved   MatchType = "exactNameResolved"
)

// MatchPair is one resolved correspondence between a truth-side and a
// candidate-side person within an entry. IDs are roster-local slots.
type MatchPair struct {
	TruthID       int       `json:"truth_id"`
	CandidateID   int       `json:"candidate_id"`
	Type          MatchType `json:"type"`
	TruthName     string    `json:"truth_name"`
	CandidateName string    `json:"candidate_name"`
}
