// Package textparse reads the line-oriented dataset format. Each
// directive is a keyword followed by its arguments; pipe-separated
// fields carry multi-part values.
//
//	entry E1
//	person John|Smith|1
//	birth 1850-06-15|Boston
//	ref R1
//	family F1 husband
//	marriage F1 1875-02-10|Boston
package textparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/parsers"
)

// Parse decodes a complete dataset from the line format. Blank lines
// and lines starting with '#' are skipped. Errors carry the offending
// line number.
func Parse(r io.Reader) (*models.Dataset, error) {
	builder := parsers.NewBuilder()

	var (
		entry  *models.Entry
		person *models.PersonRecord
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keyword, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch keyword {
		case "entry":
			entry, err = builder.StartEntry(rest)
			person = nil

		case "person":
			if entry == nil {
				err = fmt.Errorf("person before entry")
				break
			}
			fields := strings.Split(rest, "|")
			if len(fields) < 2 || len(fields) > 3 {
				err = fmt.Errorf("person wants given|surname[|label], got %d fields", len(fields))
				break
			}
			label := ""
			if len(fields) == 3 {
				label = strings.TrimSpace(fields[2])
			}
			person = builder.AddPerson(entry, strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), label)

		case "birth", "death", "christening", "burial":
			if person == nil {
				err = fmt.Errorf("%s before person", keyword)
				break
			}
			var event models.LifeEvent
			event, err = parseEvent(rest)
			if err != nil {
				break
			}
			switch keyword {
			case "birth":
				person.Birth = event
			case "death":
				person.Death = event
			case "christening":
				person.Christening = event
			case "burial":
				person.Burial = event
			}

		case "ref":
			if person == nil {
				err = fmt.Errorf("ref before person")
				break
			}
			if rest == "" {
				err = fmt.Errorf("ref wants a reference string")
				break
			}
			person.References = append(person.References, rest)

		case "family":
			if person == nil {
				err = fmt.Errorf("family before person")
				break
			}
			familyKey, role, ok := strings.Cut(rest, " ")
			if !ok {
				err = fmt.Errorf("family wants <key> <role>")
				break
			}
			err = builder.LinkFamily(person, familyKey, strings.TrimSpace(role))

		case "marriage":
			familyKey, eventText, ok := strings.Cut(rest, " ")
			if !ok {
				err = fmt.Errorf("marriage wants <key> <date>|<place>")
				break
			}
			var event models.LifeEvent
			event, err = parseEvent(eventText)
			if err != nil {
				break
			}
			builder.SetMarriage(familyKey, event)

		default:
			err = fmt.Errorf("unknown directive %q", keyword)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return builder.Dataset(), nil
}

// parseEvent splits a date|place field pair. Either half may be empty.
func parseEvent(text string) (models.LifeEvent, error) {
	date, place, ok := strings.Cut(text, "|")
	if !ok {
		return models.LifeEvent{}, fmt.Errorf("event wants <date>|<place>, got %q", text)
	}
	return parsers.Event(strings.TrimSpace(date), strings.TrimSpace(place)), nil
}
