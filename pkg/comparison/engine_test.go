package comparison

import (
	"context"
	"testing"

	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(nil, matching.NewMatcher(nil, matching.DefaultConfig()))
}

func person(given, surname string, birthYear int) *models.PersonRecord {
	return &models.PersonRecord{
		Name:  models.Name{Given: given, Surname: surname},
		Birth: models.LifeEvent{Year: birthYear},
	}
}

func entry(key string, persons ...*models.PersonRecord) *models.Entry {
	return &models.Entry{
		Key:           key,
		Persons:       persons,
		Relationships: make([]string, len(persons)),
	}
}

func dataset(entries ...*models.Entry) *models.Dataset {
	d := &models.Dataset{
		Entries:  make(map[string]*models.Entry),
		Persons:  make(map[int]*models.PersonRecord),
		Families: make(map[int]*models.FamilyRecord),
	}
	id := 1
	for _, e := range entries {
		d.Entries[e.Key] = e
		for _, p := range e.Persons {
			p.ID = id
			p.EntryKey = e.Key
			d.Persons[id] = p
			id++
		}
	}
	return d
}

func TestRunNilDataset(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Run(context.Background(), nil, dataset())
	assert.ErrorIs(t, err, ErrNilDataset)

	_, err = engine.Run(context.Background(), dataset(), nil)
	assert.ErrorIs(t, err, ErrNilDataset)
}

func TestRunProducesAllReports(t *testing.T) {
	truth := dataset(entry("E1", person("John", "Smith", 1850)))
	candidate := dataset(entry("E1", person("John", "Smith", 1850)))

	result, err := newTestEngine().Run(context.Background(), truth, candidate)
	require.NoError(t, err)
	require.NotNil(t, result.People)
	require.NotNil(t, result.References)
	require.NotNil(t, result.Relationships)
	require.NotNil(t, result.Events)
	assert.Equal(t, 1, result.People.TotalMatches)
}

func TestComparePeoplePrecise(t *testing.T) {
	truth := dataset(entry("E1", person("John", "Smith", 1850)))
	candidate := dataset(entry("E1", person("John", "Smith", 1850)))

	report, err := newTestEngine().ComparePeople(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.EntriesCompared)
	assert.Equal(t, 1, report.TotalMatches)
	assert.Equal(t, 1, report.PreciseMatches)
	assert.Equal(t, 100.0, report.PrecisionRate)
	assert.Equal(t, 1, report.MatchesByType[models.MatchExactNameUnique])
}

func TestComparePeopleImprecise(t *testing.T) {
	truth := dataset(entry("E1", person("Jon", "Smith", 1850)))
	candidate := dataset(entry("E1", person("John", "Smith", 1850)))

	report, err := newTestEngine().ComparePeople(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalMatches)
	assert.Equal(t, 0, report.PreciseMatches)
	assert.Equal(t, 0.0, report.PrecisionRate)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].Imprecise, 1)
	assert.Equal(t, "Jon Smith", report.Details[0].Imprecise[0].TruthName)
	assert.Equal(t, "John Smith", report.Details[0].Imprecise[0].CandidateName)
}

func TestComparePeopleUnmatchedCounts(t *testing.T) {
	truth := dataset(entry("E1",
		person("John", "Smith", 1850),
		person("Mary", "Klein", 1820),
	))
	candidate := dataset(entry("E1", person("John", "Smith", 1850)))

	report, err := newTestEngine().ComparePeople(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalMatches)
	assert.Equal(t, 1, report.UnmatchedTruth)
	assert.Equal(t, 0, report.UnmatchedCandidate)
	require.Len(t, report.Details, 1)
	assert.Equal(t, []string{"Mary Klein"}, report.Details[0].UnmatchedTruth)
}

func TestCompareReferencesRecall(t *testing.T) {
	a := person("John", "Smith", 1850)
	a.References = []string{"R1", "R2"}
	b := person("John", "Smith", 1850)
	b.References = []string{"R1"}

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	report, err := newTestEngine().CompareReferences(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecallErrors)
	assert.Equal(t, 0, report.PrecisionErrors)
	assert.Equal(t, 100.0, report.RecallErrorRate)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].RecallErrors, 1)

	recall := report.Details[0].RecallErrors[0]
	assert.Equal(t, []string{"R2"}, recall.MissingReferences)
	assert.Empty(t, recall.ExtraReferences)
	assert.Equal(t, 2, recall.ExpectedCount)
	assert.Equal(t, 1, recall.ActualCount)
}

func TestCompareReferencesPrecision(t *testing.T) {
	a := person("John", "Smith", 1850)
	a.References = []string{"R1"}
	b := person("John", "Smith", 1850)
	b.References = []string{"R9"}

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	report, err := newTestEngine().CompareReferences(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RecallErrors)
	assert.Equal(t, 1, report.PrecisionErrors)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].PrecisionErrors, 1)

	precision := report.Details[0].PrecisionErrors[0]
	assert.Equal(t, []string{"R1"}, precision.TruthOnly)
	assert.Equal(t, []string{"R9"}, precision.CandidateOnly)
}

func TestCompareReferencesAgreement(t *testing.T) {
	a := person("John", "Smith", 1850)
	a.References = []string{"R1", "R2"}
	b := person("John", "Smith", 1850)
	b.References = []string{"R2", "R1"}

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	report, err := newTestEngine().CompareReferences(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RecallErrors)
	assert.Equal(t, 0, report.PrecisionErrors)
	assert.Empty(t, report.Details)
}

func TestCompareRelationshipsRoleAgreement(t *testing.T) {
	te := entry("E1", person("John", "Smith", 1850))
	te.Relationships = []string{"2a"}
	ce := entry("E1", person("John", "Smith", 1850))
	ce.Relationships = []string{"7a"}

	report, err := newTestEngine().CompareRelationships(context.Background(), dataset(te), dataset(ce))
	require.NoError(t, err)

	// Only the role letters matter; the leading digits may differ freely.
	assert.Equal(t, 0, report.RecallErrors)
	assert.Empty(t, report.Details)
}

func TestCompareRelationshipsRoleMismatch(t *testing.T) {
	te := entry("E1", person("John", "Smith", 1850))
	te.Relationships = []string{"1"}
	ce := entry("E1", person("John", "Smith", 1850))
	ce.Relationships = []string{"2a"}

	report, err := newTestEngine().CompareRelationships(context.Background(), dataset(te), dataset(ce))
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecallErrors)
	assert.Equal(t, 100.0, report.RecallErrorRate)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].RecallErrors, 1)

	mismatch := report.Details[0].RecallErrors[0]
	assert.Equal(t, "1", mismatch.TruthLabel)
	assert.Equal(t, "2a", mismatch.CandidateLabel)
	assert.Equal(t, "", mismatch.TruthRole)
	assert.Equal(t, "a", mismatch.CandidateRole)
}

func TestCompareEventsMissingSide(t *testing.T) {
	a := person("John", "Smith", 1850)
	a.Death = models.LifeEvent{Date: "1900-01-01", Place: "Boston", Year: 1900}
	b := person("John", "Smith", 1850)

	report, err := newTestEngine().CompareEvents(context.Background(), dataset(entry("E1", a)), dataset(entry("E1", b)))
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecallErrors)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].RecallErrors, 1)

	recall := report.Details[0].RecallErrors[0]
	assert.Equal(t, models.EventDeath, recall.Event)
	assert.Equal(t, models.SideCandidate, recall.MissingFrom)
}

func TestCompareEventsFieldMismatch(t *testing.T) {
	a := person("John", "Smith", 1850)
	a.Birth = models.LifeEvent{Date: "1850-06-15", Place: "Boston", Year: 1850}
	b := person("John", "Smith", 1850)
	b.Birth = models.LifeEvent{Date: "1850-06-15", Place: "Salem", Year: 1850}

	report, err := newTestEngine().CompareEvents(context.Background(), dataset(entry("E1", a)), dataset(entry("E1", b)))
	require.NoError(t, err)

	assert.Equal(t, 1, report.PrecisionErrors)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].PrecisionErrors, 1)

	precision := report.Details[0].PrecisionErrors[0]
	assert.Equal(t, models.EventBirth, precision.Event)
	assert.Equal(t, []string{"place"}, precision.Fields)
	assert.Equal(t, "Boston", precision.TruthPlace)
	assert.Equal(t, "Salem", precision.CandidatePlace)
}

func TestCompareEventsMarriageCountMismatch(t *testing.T) {
	a := person("John", "Smith", 1850)
	b := person("John", "Smith", 1850)

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	truth.Families[1] = &models.FamilyRecord{
		ID:        1,
		HusbandID: a.ID,
		Marriage:  models.LifeEvent{Date: "1875-02-10", Place: "Boston", Year: 1875},
	}
	a.FamilyIDs = []int{1}

	report, err := newTestEngine().CompareEvents(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RecallErrors)
	require.Len(t, report.Details, 1)
	require.Len(t, report.Details[0].RecallErrors, 1)

	recall := report.Details[0].RecallErrors[0]
	assert.Equal(t, models.EventMarriage, recall.Event)
	assert.Equal(t, 1, recall.ExpectedCount)
	assert.Equal(t, 0, recall.ActualCount)
}

func TestCompareEventsMarriageAgreement(t *testing.T) {
	a := person("John", "Smith", 1850)
	b := person("John", "Smith", 1850)

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	marriage := models.LifeEvent{Date: "1875-02-10", Place: "Boston", Year: 1875}
	truth.Families[1] = &models.FamilyRecord{ID: 1, HusbandID: a.ID, Marriage: marriage}
	a.FamilyIDs = []int{1}
	candidate.Families[1] = &models.FamilyRecord{ID: 1, HusbandID: b.ID, Marriage: marriage}
	b.FamilyIDs = []int{1}

	report, err := newTestEngine().CompareEvents(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RecallErrors)
	assert.Equal(t, 0, report.PrecisionErrors)
}

func TestCompareEventsChildFamilyIgnored(t *testing.T) {
	a := person("John", "Smith", 1850)
	b := person("John", "Smith", 1850)

	truth := dataset(entry("E1", a))
	candidate := dataset(entry("E1", b))

	// The person is a child in this family; its marriage belongs to the
	// parents and must not count against the child.
	truth.Families[1] = &models.FamilyRecord{
		ID:       1,
		ChildIDs: []int{a.ID},
		Marriage: models.LifeEvent{Date: "1840-01-01", Place: "Boston", Year: 1840},
	}
	a.FamilyIDs = []int{1}

	report, err := newTestEngine().CompareEvents(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, report.RecallErrors)
	assert.Equal(t, 0, report.PrecisionErrors)
}

func TestZeroMatchesZeroRates(t *testing.T) {
	truth := dataset(entry("E1", person("John", "Smith", 1850)))
	candidate := dataset(entry("E1", person("Sarah", "Klein", 1900)))

	result, err := newTestEngine().Run(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, result.People.TotalMatches)
	assert.Equal(t, 0.0, result.People.PrecisionRate)
	assert.Equal(t, 0.0, result.References.RecallErrorRate)
	assert.Equal(t, 0.0, result.References.PrecisionErrorRate)
	assert.Equal(t, 0.0, result.Relationships.RecallErrorRate)
	assert.Equal(t, 0.0, result.Events.RecallErrorRate)
	assert.Equal(t, 0.0, result.Events.PrecisionErrorRate)
}

func TestDisjointEntryKeysCompareNothing(t *testing.T) {
	truth := dataset(entry("E1", person("John", "Smith", 1850)))
	candidate := dataset(entry("E2", person("John", "Smith", 1850)))

	report, err := newTestEngine().ComparePeople(context.Background(), truth, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0, report.EntriesCompared)
	assert.Equal(t, 0, report.TotalMatches)
}
