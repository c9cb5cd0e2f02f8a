// Package comparison measures how well a candidate dataset reproduces a
// ground-truth dataset. Every facet shares the same template: enumerate
// the entry keys common to both datasets, match each entry's rosters,
// then derive facet disagreement from the matched pairs. Disagreements
// are the measurement target, so they are recorded as report data and
// never raised as errors; a malformed entry can never abort a run.
package comparison

import (
	"context"
	"errors"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// ErrNilDataset is returned when a caller hands the engine a missing
// dataset. This is a contract violation, not a data-quality finding.
var ErrNilDataset = errors.New("comparison requires two loaded datasets")

// Engine drives the matcher across every shared entry and computes the
// four facet reports.
type Engine struct {
	log     ectologger.Logger
	matcher *matching.Matcher
}

// NewEngine creates a new comparison engine.
func NewEngine(log ectologger.Logger, matcher *matching.Matcher) *Engine {
	return &Engine{
		log:     log,
		matcher: matcher,
	}
}

// Run computes all four facet reports for one dataset pair.
func (e *Engine) Run(ctx context.Context, truth, candidate *models.Dataset) (*models.ComparisonResult, error) {
	ctx, span := tracing.StartSpan(ctx, "comparison.Engine.Run")
	defer span.End()

	people, err := e.ComparePeople(ctx, truth, candidate)
	if err != nil {
		return nil, err
	}
	references, err := e.CompareReferences(ctx, truth, candidate)
	if err != nil {
		return nil, err
	}
	relationships, err := e.CompareRelationships(ctx, truth, candidate)
	if err != nil {
		return nil, err
	}
	events, err := e.CompareEvents(ctx, truth, candidate)
	if err != nil {
		return nil, err
	}

	return &models.ComparisonResult{
		People:        people,
		References:    references,
		Relationships: relationships,
		Events:        events,
	}, nil
}

// matchedEntry is one shared entry with its match result, handed to the
// facet accumulators.
type matchedEntry struct {
	key       string
	truth     *models.Entry
	candidate *models.Entry
	result    *matching.Result
}

// forEachSharedEntry runs the matcher over every entry key present in
// both datasets, in sorted key order, and feeds each outcome to fn.
// It returns the entry and match totals every report carries.
func (e *Engine) forEachSharedEntry(ctx context.Context, truth, candidate *models.Dataset, fn func(matchedEntry)) (entriesCompared, totalMatches int, err error) {
	if truth == nil || candidate == nil {
		return 0, 0, ErrNilDataset
	}

	for _, key := range truth.SharedEntryKeys(candidate) {
		te, ce := truth.Entry(key), candidate.Entry(key)
		result := e.matcher.Match(ctx, te, ce)

		entriesCompared++
		totalMatches += len(result.Pairs)

		fn(matchedEntry{
			key:       key,
			truth:     te,
			candidate: ce,
			result:    result,
		})
	}

	return entriesCompared, totalMatches, nil
}

// personsOf resolves a matched pair to its two records.
func (m matchedEntry) personsOf(pair models.MatchPair) (*models.PersonRecord, *models.PersonRecord) {
	return m.truth.Persons[pair.TruthID], m.candidate.Persons[pair.CandidateID]
}
