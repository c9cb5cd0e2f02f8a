// Package matching establishes a correspondence between the two rosters
// of an entry: five ordered phases over shared matched-slot state, each
// claiming both sides greedily on the first acceptable partner.
// First-fit, not globally optimal, so runs are deterministic for a fixed
// roster order.
package matching

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/names"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Config contains configuration for the matcher.
type Config struct {
	BirthYearTolerance int // Maximum birth-year gap for name-based phases (default: 5)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BirthYearTolerance: 5,
	}
}

// Matcher matches the people of one entry across two datasets.
type Matcher struct {
	log ectologger.Logger
	cfg Config
}

// NewMatcher creates a new matcher.
func NewMatcher(log ectologger.Logger, cfg Config) *Matcher {
	return &Matcher{
		log: log,
		cfg: cfg,
	}
}

// Result is the outcome of matching one entry pair.
type Result struct {
	Pairs              []models.MatchPair
	UnmatchedTruth     []int
	UnmatchedCandidate []int
}

// Match runs the five phases over the truth and candidate rosters of one
// entry. It never fails: unmatched individuals are reported, not raised,
// and empty or nil rosters yield an empty pair list with full unmatched
// lists.
func (m *Matcher) Match(ctx context.Context, truth, candidate *models.Entry) *Result {
	ctx, span := tracing.StartSpan(ctx, "matching.Matcher.Match")
	defer span.End()

	s := newSession(truth, candidate, m.cfg)

	s.phaseExactUnique()
	s.phaseEventReference()
	s.phaseRelationshipSimilar()
	s.phaseSimilarName()
	s.phaseExactResolved()

	result := s.result()

	if m.log != nil {
		m.log.WithContext(ctx).WithFields(map[string]any{
			"entry_key":           s.key(),
			"match_count":         len(result.Pairs),
			"unmatched_truth":     len(result.UnmatchedTruth),
			"unmatched_candidate": len(result.UnmatchedCandidate),
		}).Debug("Matched entry rosters")
	}

	return result
}

// session is the mutable state of one matching pass. Matched slots are
// tracked as boolean arrays indexed by roster-local slot ID, so the
// "still unmatched" check is O(1) and each side can appear in at most
// one pair.
type session struct {
	truth     *models.Entry
	candidate *models.Entry
	matchedT  []bool
	matchedC  []bool
	pairs     []models.MatchPair
	cfg       Config
}

func newSession(truth, candidate *models.Entry, cfg Config) *session {
	if truth == nil {
		truth = &models.Entry{}
	}
	if candidate == nil {
		candidate = &models.Entry{}
	}
	return &session{
		truth:     truth,
		candidate: candidate,
		matchedT:  make([]bool, len(truth.Persons)),
		matchedC:  make([]bool, len(candidate.Persons)),
		cfg:       cfg,
	}
}

func (s *session) key() string {
	if s.truth.Key != "" {
		return s.truth.Key
	}
	return s.candidate.Key
}

func (s *session) claim(i, j int, matchType models.MatchType) {
	s.matchedT[i] = true
	s.matchedC[j] = true
	s.pairs = append(s.pairs, models.MatchPair{
		TruthID:       i,
		CandidateID:   j,
		Type:          matchType,
		TruthName:     s.truth.Persons[i].Name.String(),
		CandidateName: s.candidate.Persons[j].Name.String(),
	})
}

func (s *session) result() *Result {
	result := &Result{
		Pairs:              s.pairs,
		UnmatchedTruth:     []int{},
		UnmatchedCandidate: []int{},
	}
	for i, matched := range s.matchedT {
		if !matched {
			result.UnmatchedTruth = append(result.UnmatchedTruth, i)
		}
	}
	for j, matched := range s.matchedC {
		if !matched {
			result.UnmatchedCandidate = append(result.UnmatchedCandidate, j)
		}
	}
	return result
}

// phaseExactUnique pairs people whose exact name is unique within each
// full roster, gated on birth-date compatibility. Duplicate names stay
// unmatched here; later phases may resolve them on stronger evidence.
func (s *session) phaseExactUnique() {
	for i, a := range s.truth.Persons {
		if s.matchedT[i] {
			continue
		}
		if countExact(s.truth, a.Name, nil) != 1 {
			continue
		}
		for j, b := range s.candidate.Persons {
			if s.matchedC[j] {
				continue
			}
			if !names.ExactMatch(a.Name, b.Name) {
				continue
			}
			if countExact(s.candidate, b.Name, nil) != 1 {
				continue
			}
			if !s.birthCompatible(a, b) {
				continue
			}
			s.claim(i, j, models.MatchExactNameUnique)
			break
		}
	}
}

// phaseEventReference pairs people who share at least one non-empty
// equal life event or an identical cross-reference string. Names are not
// consulted; the shared fact is the evidence.
func (s *session) phaseEventReference() {
	for i, a := range s.truth.Persons {
		if s.matchedT[i] {
			continue
		}
		for j, b := range s.candidate.Persons {
			if s.matchedC[j] {
				continue
			}
			if !s.birthCompatible(a, b) {
				continue
			}
			if !sharesEvent(a, b) && !sharesReference(a, b) {
				continue
			}
			s.claim(i, j, models.MatchEventReference)
			break
		}
	}
}

// phaseRelationshipSimilar pairs fuzzy-similar names whose surnames
// independently agree and who carry the same non-empty relationship
// role. Exactly-equal names must also be unique in both rosters, else
// the pair is skipped as ambiguous.
func (s *session) phaseRelationshipSimilar() {
	for i, a := range s.truth.Persons {
		if s.matchedT[i] {
			continue
		}
		roleA := models.RoleLetters(s.truth.Relationship(i))
		if roleA == "" {
			continue
		}
		for j, b := range s.candidate.Persons {
			if s.matchedC[j] {
				continue
			}
			if models.RoleLetters(s.candidate.Relationship(j)) != roleA {
				continue
			}
			if !names.SimilarMatch(a.Name, b.Name) {
				continue
			}
			if !names.SurnameSimilar(a.Name.Surname, b.Name.Surname) {
				continue
			}
			if !s.birthCompatible(a, b) {
				continue
			}
			if s.exactAmbiguous(a, b) {
				continue
			}
			s.claim(i, j, models.MatchRelationshipSimilar)
			break
		}
	}
}

// phaseSimilarName is the fallback: fuzzy name similarity plus the birth
// gate alone, with the same exact-equality ambiguity guard as phase 3.
func (s *session) phaseSimilarName() {
	for i, a := range s.truth.Persons {
		if s.matchedT[i] {
			continue
		}
		for j, b := range s.candidate.Persons {
			if s.matchedC[j] {
				continue
			}
			if !names.SimilarMatch(a.Name, b.Name) {
				continue
			}
			if !s.birthCompatible(a, b) {
				continue
			}
			if s.exactAmbiguous(a, b) {
				continue
			}
			s.claim(i, j, models.MatchSimilarName)
			break
		}
	}
}

// phaseExactResolved re-examines exact-name pairs the first phase left
// behind. Ambiguity may have resolved once rivals were claimed on
// stronger evidence, so uniqueness is computed over the still-unmatched
// remainder of each roster.
func (s *session) phaseExactResolved() {
	for i, a := range s.truth.Persons {
		if s.matchedT[i] {
			continue
		}
		if countExact(s.truth, a.Name, s.matchedT) != 1 {
			continue
		}
		for j, b := range s.candidate.Persons {
			if s.matchedC[j] {
				continue
			}
			if !names.ExactMatch(a.Name, b.Name) {
				continue
			}
			if countExact(s.candidate, b.Name, s.matchedC) != 1 {
				continue
			}
			s.claim(i, j, models.MatchExactNameResolved)
			break
		}
	}
}

// exactAmbiguous applies the phase 3/4 guard: a pair whose names are
// exactly equal is only safe when that name is unique within each
// roster.
func (s *session) exactAmbiguous(a, b *models.PersonRecord) bool {
	if !names.ExactMatch(a.Name, b.Name) {
		return false
	}
	return countExact(s.truth, a.Name, nil) != 1 || countExact(s.candidate, b.Name, nil) != 1
}

// birthCompatible gates the name-based phases: an unknown birth year on
// either side is always compatible, otherwise the gap must stay within
// the configured tolerance.
func (s *session) birthCompatible(a, b *models.PersonRecord) bool {
	ya, yb := a.Birth.Year, b.Birth.Year
	if ya == 0 || yb == 0 {
		return true
	}
	diff := ya - yb
	if diff < 0 {
		diff = -diff
	}
	return diff <= s.cfg.BirthYearTolerance
}

// countExact counts exact name occurrences in a roster. A non-nil
// matched filter restricts the count to still-unmatched slots.
func countExact(entry *models.Entry, name models.Name, matched []bool) int {
	count := 0
	for i, p := range entry.Persons {
		if matched != nil && matched[i] {
			continue
		}
		if names.ExactMatch(p.Name, name) {
			count++
		}
	}
	return count
}

// sharesEvent reports whether any of the four life events agree on a
// non-empty date or a non-empty place.
func sharesEvent(a, b *models.PersonRecord) bool {
	for _, kind := range models.IndividualEventKinds {
		ea, eb := a.Event(kind), b.Event(kind)
		if ea.Date != "" && ea.Date == eb.Date {
			return true
		}
		if ea.Place != "" && ea.Place == eb.Place {
			return true
		}
	}
	return false
}

// sharesReference reports whether the two reference sets intersect.
func sharesReference(a, b *models.PersonRecord) bool {
	for _, ra := range a.References {
		for _, rb := range b.References {
			if ra == rb {
				return true
			}
		}
	}
	return false
}
