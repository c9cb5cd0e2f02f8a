package comparison

import (
	"context"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// CompareRelationships measures relationship-label agreement on matched
// pairs. Only the role-letter suffix is compared; the leading digit is a
// traversal artifact. Malformed labels degrade to an empty suffix, so a
// label on one side and garbage on the other counts as a recall error
// rather than aborting the run.
func (e *Engine) CompareRelationships(ctx context.Context, truth, candidate *models.Dataset) (*models.RelationshipReport, error) {
	ctx, span := tracing.StartSpan(ctx, "comparison.Engine.CompareRelationships")
	defer span.End()

	report := &models.RelationshipReport{
		Details: []models.RelationshipEntryDetail{},
	}

	entries, total, err := e.forEachSharedEntry(ctx, truth, candidate, func(m matchedEntry) {
		detail := models.RelationshipEntryDetail{EntryKey: m.key}

		for _, pair := range m.result.Pairs {
			truthLabel := m.truth.Relationship(pair.TruthID)
			candidateLabel := m.candidate.Relationship(pair.CandidateID)

			truthRole := models.RoleLetters(truthLabel)
			candidateRole := models.RoleLetters(candidateLabel)
			if truthRole == candidateRole {
				continue
			}

			report.RecallErrors++
			detail.RecallErrors = append(detail.RecallErrors, models.RelationshipMismatch{
				PersonName:     pair.TruthName,
				TruthLabel:     truthLabel,
				CandidateLabel: candidateLabel,
				TruthRole:      truthRole,
				CandidateRole:  candidateRole,
			})
		}

		if len(detail.RecallErrors) > 0 {
			report.Details = append(report.Details, detail)
		}
	})
	if err != nil {
		return nil, err
	}

	report.EntriesCompared = entries
	report.TotalMatches = total
	report.RecallErrorRate = models.Rate(report.RecallErrors, total)

	return report, nil
}
