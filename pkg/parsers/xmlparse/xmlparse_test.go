package xmlparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `
<dataset>
  <entry key="E1">
    <person given="John" surname="Smith" label="1">
      <birth date="1850-06-15" place="Boston"/>
      <ref>R1</ref>
      <ref>R2</ref>
      <family key="F1" role="husband"/>
    </person>
    <person given="Mary" surname="Smith" label="1a">
      <family key="F1" role="wife"/>
    </person>
    <marriage family="F1" date="1875-02-10" place="Boston"/>
  </entry>
  <entry key="E2">
    <person given="Peter" surname="Weber">
      <christening date="1840"/>
    </person>
  </entry>
</dataset>`

func TestParseSample(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.Len(t, ds.Entries, 2)
	require.Len(t, ds.Persons, 3)
	require.Len(t, ds.Families, 1)

	e1 := ds.Entry("E1")
	require.NotNil(t, e1)
	assert.Equal(t, []string{"1", "1a"}, e1.Relationships)

	john := e1.Persons[0]
	assert.Equal(t, "John Smith", john.Name.String())
	assert.Equal(t, 1850, john.Birth.Year)
	assert.Equal(t, "Boston", john.Birth.Place)
	assert.Equal(t, []string{"R1", "R2"}, john.References)

	mary := e1.Persons[1]
	family := ds.Families[1]
	assert.Equal(t, john.ID, family.HusbandID)
	assert.Equal(t, mary.ID, family.WifeID)
	assert.Equal(t, "1875-02-10", family.Marriage.Date)
	assert.Equal(t, 1875, family.Marriage.Year)

	peter := ds.Entry("E2").Persons[0]
	assert.Equal(t, 1840, peter.Christening.Year)
	assert.True(t, peter.Birth.IsEmpty())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{"not xml", "entry E1"},
		{"bad role", `<dataset><entry key="E1"><person given="J" surname="S"><family key="F1" role="cousin"/></person></entry></dataset>`},
		{"duplicate entry", `<dataset><entry key="E1"/><entry key="E1"/></dataset>`},
		{"marriage without family", `<dataset><entry key="E1"><marriage date="1875"/></entry></dataset>`},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
