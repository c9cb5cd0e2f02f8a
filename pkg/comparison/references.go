package comparison

import (
	"context"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// CompareReferences measures cross-reference agreement on matched pairs.
// A cardinality mismatch is a recall error carrying the symmetric
// difference and both counts; equal-sized sets with differing contents
// are a precision error carrying the both-sided differences.
func (e *Engine) CompareReferences(ctx context.Context, truth, candidate *models.Dataset) (*models.ReferenceReport, error) {
	ctx, span := tracing.StartSpan(ctx, "comparison.Engine.CompareReferences")
	defer span.End()

	report := &models.ReferenceReport{
		Details: []models.ReferenceEntryDetail{},
	}

	entries, total, err := e.forEachSharedEntry(ctx, truth, candidate, func(m matchedEntry) {
		detail := models.ReferenceEntryDetail{EntryKey: m.key}

		for _, pair := range m.result.Pairs {
			a, b := m.personsOf(pair)
			truthOnly, candidateOnly := referenceDifference(a.References, b.References)
			if len(truthOnly) == 0 && len(candidateOnly) == 0 {
				continue
			}

			if len(a.References) != len(b.References) {
				report.RecallErrors++
				detail.RecallErrors = append(detail.RecallErrors, models.ReferenceRecallError{
					PersonName:        pair.TruthName,
					MissingReferences: truthOnly,
					ExtraReferences:   candidateOnly,
					ExpectedCount:     len(a.References),
					ActualCount:       len(b.References),
				})
				continue
			}

			report.PrecisionErrors++
			detail.PrecisionErrors = append(detail.PrecisionErrors, models.ReferencePrecisionError{
				PersonName:    pair.TruthName,
				TruthOnly:     truthOnly,
				CandidateOnly: candidateOnly,
			})
		}

		if len(detail.RecallErrors) > 0 || len(detail.PrecisionErrors) > 0 {
			report.Details = append(report.Details, detail)
		}
	})
	if err != nil {
		return nil, err
	}

	report.EntriesCompared = entries
	report.TotalMatches = total
	report.RecallErrorRate = models.Rate(report.RecallErrors, total)
	report.PrecisionErrorRate = models.Rate(report.PrecisionErrors, total)

	return report, nil
}

// referenceDifference returns the references present on only one side,
// preserving record order.
func referenceDifference(truthRefs, candidateRefs []string) (truthOnly, candidateOnly []string) {
	for _, r := range truthRefs {
		if !containsString(candidateRefs, r) {
			truthOnly = append(truthOnly, r)
		}
	}
	for _, r := range candidateRefs {
		if !containsString(truthRefs, r) {
			candidateOnly = append(candidateOnly, r)
		}
	}
	return truthOnly, candidateOnly
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
