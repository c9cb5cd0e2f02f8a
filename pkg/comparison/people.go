package comparison

import (
	"context"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/names"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// ComparePeople measures identity agreement: a match is precise when the
// two canonical names agree exactly. Per-phase match counts and
// unmatched counts are rolled up alongside the precision rate.
func (e *Engine) ComparePeople(ctx context.Context, truth, candidate *models.Dataset) (*models.PeopleReport, error) {
	ctx, span := tracing.StartSpan(ctx, "comparison.Engine.ComparePeople")
	defer span.End()

	report := &models.PeopleReport{
		MatchesByType: make(map[models.MatchType]int),
		Details:       []models.PeopleEntryDetail{},
	}

	entries, total, err := e.forEachSharedEntry(ctx, truth, candidate, func(m matchedEntry) {
		detail := models.PeopleEntryDetail{
			EntryKey: m.key,
			Matches:  m.result.Pairs,
		}

		for _, pair := range m.result.Pairs {
			report.MatchesByType[pair.Type]++

			a, b := m.personsOf(pair)
			if names.ExactMatch(a.Name, b.Name) {
				report.PreciseMatches++
				continue
			}
			detail.Imprecise = append(detail.Imprecise, models.NameMismatch{
				TruthName:     pair.TruthName,
				CandidateName: pair.CandidateName,
			})
		}

		for _, slot := range m.result.UnmatchedTruth {
			detail.UnmatchedTruth = append(detail.UnmatchedTruth, m.truth.Persons[slot].Name.String())
		}
		for _, slot := range m.result.UnmatchedCandidate {
			detail.UnmatchedCandidate = append(detail.UnmatchedCandidate, m.candidate.Persons[slot].Name.String())
		}

		report.UnmatchedTruth += len(m.result.UnmatchedTruth)
		report.UnmatchedCandidate += len(m.result.UnmatchedCandidate)
		report.Details = append(report.Details, detail)
	})
	if err != nil {
		return nil, err
	}

	report.EntriesCompared = entries
	report.TotalMatches = total
	report.PrecisionRate = models.Rate(report.PreciseMatches, total)

	if e.log != nil {
		e.log.WithContext(ctx).WithFields(map[string]any{
			"entries_compared": entries,
			"total_matches":    total,
			"precision_rate":   report.PrecisionRate,
		}).Debug("Compared people")
	}

	return report, nil
}
