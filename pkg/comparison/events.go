package comparison

import (
	"context"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// CompareEvents measures life-event agreement on matched pairs. The four
// individual events compare pairwise: both empty is a match, exactly one
// empty is a recall error tagged with the missing side, and both present
// compare date and place strings independently, any mismatch being a
// precision error tagged with the differing fields. Marriage events
// resolve through each person's spouse families: a marriage-count
// mismatch is a recall error, then correspondingly-indexed marriages
// compare under the same date/place rule.
func (e *Engine) CompareEvents(ctx context.Context, truth, candidate *models.Dataset) (*models.EventReport, error) {
	ctx, span := tracing.StartSpan(ctx, "comparison.Engine.CompareEvents")
	defer span.End()

	report := &models.EventReport{
		Details: []models.EventEntryDetail{},
	}

	entries, total, err := e.forEachSharedEntry(ctx, truth, candidate, func(m matchedEntry) {
		detail := models.EventEntryDetail{EntryKey: m.key}

		for _, pair := range m.result.Pairs {
			a, b := m.personsOf(pair)

			for _, kind := range models.IndividualEventKinds {
				compareEventPair(&detail, pair.TruthName, kind, a.Event(kind), b.Event(kind))
			}

			truthMarriages := truth.SpouseMarriages(a)
			candidateMarriages := candidate.SpouseMarriages(b)
			if len(truthMarriages) != len(candidateMarriages) {
				detail.RecallErrors = append(detail.RecallErrors, models.EventRecallError{
					PersonName:    pair.TruthName,
					Event:         models.EventMarriage,
					ExpectedCount: len(truthMarriages),
					ActualCount:   len(candidateMarriages),
				})
				continue
			}
			for i := range truthMarriages {
				compareEventPair(&detail, pair.TruthName, models.EventMarriage, truthMarriages[i], candidateMarriages[i])
			}
		}

		report.RecallErrors += len(detail.RecallErrors)
		report.PrecisionErrors += len(detail.PrecisionErrors)
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

// compareEventPair applies the shared event rule to one truth/candidate
// event pair and records any disagreement on the entry detail.
func compareEventPair(detail *models.EventEntryDetail, personName string, kind models.EventKind, truthEvent, candidateEvent models.LifeEvent) {
	switch {
	case truthEvent.IsEmpty() && candidateEvent.IsEmpty():
		return

	case candidateEvent.IsEmpty():
		detail.RecallErrors = append(detail.RecallErrors, models.EventRecallError{
			PersonName:  personName,
			Event:       kind,
			MissingFrom: models.SideCandidate,
		})

	case truthEvent.IsEmpty():
		detail.RecallErrors = append(detail.RecallErrors, models.EventRecallError{
			PersonName:  personName,
			Event:       kind,
			MissingFrom: models.SideTruth,
		})

	default:
		var fields []string
		if truthEvent.Date != candidateEvent.Date {
			fields = append(fields, "date")
		}
		if truthEvent.Place != candidateEvent.Place {
			fields = append(fields, "place")
		}
		if len(fields) == 0 {
			return
		}
		detail.PrecisionErrors = append(detail.PrecisionErrors, models.EventPrecisionError{
			PersonName:     personName,
			Event:          kind,
			Fields:         fields,
			TruthDate:      truthEvent.Date,
			CandidateDate:  candidateEvent.Date,
			TruthPlace:     truthEvent.Place,
			CandidatePlace: candidateEvent.Place,
		})
	}
}
