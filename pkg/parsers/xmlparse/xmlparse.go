// Package xmlparse reads the XML dataset format, a schema-typed
// rendering of the same model the line format carries.
package xmlparse

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/parsers"
)

type xmlDataset struct {
	XMLName xml.Name   `xml:"dataset"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key       string        `xml:"key,attr"`
	Persons   []xmlPerson   `xml:"person"`
	Marriages []xmlMarriage `xml:"marriage"`
}

type xmlPerson struct {
	Given       string          `xml:"given,attr"`
	Surname     string          `xml:"surname,attr"`
	Label       string          `xml:"label,attr"`
	Birth       *xmlEvent       `xml:"birth"`
	Death       *xmlEvent       `xml:"death"`
	Christening *xmlEvent       `xml:"christening"`
	Burial      *xmlEvent       `xml:"burial"`
	References  []string        `xml:"ref"`
	Families    []xmlFamilyLink `xml:"family"`
}

type xmlEvent struct {
	Date  string `xml:"date,attr"`
	Place string `xml:"place,attr"`
}

type xmlFamilyLink struct {
	Key  string `xml:"key,attr"`
	Role string `xml:"role,attr"`
}

type xmlMarriage struct {
	Family string `xml:"family,attr"`
	Date   string `xml:"date,attr"`
	Place  string `xml:"place,attr"`
}

// Parse decodes a complete dataset from its XML form.
func Parse(r io.Reader) (*models.Dataset, error) {
	var doc xmlDataset
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	builder := parsers.NewBuilder()
	for _, e := range doc.Entries {
		entry, err := builder.StartEntry(e.Key)
		if err != nil {
			return nil, err
		}

		for _, p := range e.Persons {
			person := builder.AddPerson(entry, p.Given, p.Surname, p.Label)
			person.Birth = event(p.Birth)
			person.Death = event(p.Death)
			person.Christening = event(p.Christening)
			person.Burial = event(p.Burial)
			person.References = append(person.References, p.References...)

			for _, link := range p.Families {
				if err := builder.LinkFamily(person, link.Key, link.Role); err != nil {
					return nil, fmt.Errorf("entry %q: %w", e.Key, err)
				}
			}
		}

		for _, m := range e.Marriages {
			if m.Family == "" {
				return nil, fmt.Errorf("entry %q: marriage without a family key", e.Key)
			}
			builder.SetMarriage(m.Family, parsers.Event(m.Date, m.Place))
		}
	}

	return builder.Dataset(), nil
}

func event(e *xmlEvent) models.LifeEvent {
	if e == nil {
		return models.LifeEvent{}
	}
	return parsers.Event(e.Date, e.Place)
}
