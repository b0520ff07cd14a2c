package importer

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// TextExtractor pulls plain text out of a scanned document. The OCR engine
// itself runs elsewhere; this package only consumes its output.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, contentType string) (string, error)
}

// ParseDocumentText turns whitespace-separated lines of extracted text into
// rows. The layout is positional, matching the hand-filled sheets the site
// offices scan in. Lines too short for the entity's layout do not fail the
// run; they come back in the rejected count so the caller can surface them.
func ParseDocumentText(text string, entity EntityType) (rows []Row, rejected int) {
	today := time.Now().UTC().Format("2006-01-02")
	thisMonth := time.Now().UTC().Format("2006-01") + "-01"

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var row Row
		switch entity {
		case EntityEmployees:
			if len(parts) >= 4 {
				row = Row{
					"name":          parts[0] + " " + parts[1],
					"employee_code": parts[2],
					"role":          parts[3],
					"date_of_join":  today,
				}
			}
		case EntityPayrolls:
			if len(parts) >= 3 {
				row = Row{
					"employee_code": parts[0],
					"hours_worked":  numericOrZero(parts[1]),
					"month":         thisMonth,
				}
			}
		case EntityAdvances:
			if len(parts) >= 3 {
				row = Row{
					"employee_code": parts[0],
					"amount":        numericOrZero(parts[1]),
					"note":          strings.Join(parts[2:], " "),
					"date":          today,
				}
			}
		case EntityExpenses:
			if len(parts) >= 3 {
				row = Row{
					"category":    parts[0],
					"amount":      numericOrZero(parts[1]),
					"description": strings.Join(parts[2:], " "),
					"date":        today,
				}
			}
		}

		if row == nil {
			rejected++
			continue
		}
		rows = append(rows, row)
	}

	return rows, rejected
}

func numericOrZero(raw string) string {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return "0"
	}
	return raw
}
