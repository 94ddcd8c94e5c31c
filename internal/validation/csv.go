package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// csvField is the synthetic field tag for batch-level CSV errors.
const csvField = "csv"

// maxCSVErrors caps the number of row errors reported before the remainder is
// summarized in one final entry.
const maxCSVErrors = 10

// requiredCSVColumns are the headers a roster CSV must carry, in report order.
var requiredCSVColumns = []string{"email", "first_name", "last_name"}

// ValidateAttendeeCSV checks a raw roster CSV blob: structure (header row plus
// at least one data row, required columns) and per-row content for the three
// required columns. Splitting is a plain comma/newline split; quoted fields
// containing commas are not supported. A missing required column does not stop
// the row scan: rows are still checked against whichever columns were found,
// and the checks for the missing column are skipped.
func ValidateAttendeeCSV(raw string) ValidationResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return newResult([]ValidationError{{Field: csvField, Message: "CSV data is required"}})
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return newResult([]ValidationError{{Field: csvField, Message: "CSV must contain at least a header row and one data row"}})
	}

	var errs []ValidationError

	colIndex := headerIndex(lines[0])
	var missing []string
	for _, col := range requiredCSVColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, ValidationError{
			Field:   csvField,
			Message: "Missing required columns: " + strings.Join(missing, ", "),
		})
	}

	for i, line := range lines[1:] {
		rowNum := i + 2 // header is row 1
		cells := splitRow(line)

		if idx, ok := colIndex["email"]; ok {
			email := cellAt(cells, idx)
			if email == "" {
				errs = append(errs, ValidationError{Field: csvField, Message: fmt.Sprintf("Row %d: email is required", rowNum)})
			} else if !IsValidEmail(email) {
				errs = append(errs, ValidationError{Field: csvField, Message: fmt.Sprintf("Row %d: invalid email format", rowNum)})
			}
		}
		for _, col := range []string{"first_name", "last_name"} {
			idx, ok := colIndex[col]
			if !ok {
				continue
			}
			name := cellAt(cells, idx)
			if name == "" {
				errs = append(errs, ValidationError{Field: csvField, Message: fmt.Sprintf("Row %d: %s is required", rowNum, col)})
			} else if utf8.RuneCountInString(name) < 2 {
				errs = append(errs, ValidationError{Field: csvField, Message: fmt.Sprintf("Row %d: %s must be at least 2 characters", rowNum, col)})
			}
		}
	}

	if len(errs) > maxCSVErrors {
		extra := len(errs) - maxCSVErrors
		errs = append(errs[:maxCSVErrors], ValidationError{
			Field:   csvField,
			Message: fmt.Sprintf("...and %d more errors", extra),
		})
	}

	return newResult(errs)
}

// ParseAttendeeCSV maps the data rows of an already-validated CSV blob to
// attendee records using the header order. Columns the header does not name
// are left unset; optional columns with empty cells stay nil.
func ParseAttendeeCSV(raw string) []AttendeeInput {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return nil
	}

	colIndex := headerIndex(lines[0])
	records := make([]AttendeeInput, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitRow(line)
		rec := AttendeeInput{}
		if idx, ok := colIndex["email"]; ok {
			rec.Email = cellAt(cells, idx)
		}
		if idx, ok := colIndex["first_name"]; ok {
			rec.FirstName = cellAt(cells, idx)
		}
		if idx, ok := colIndex["last_name"]; ok {
			rec.LastName = cellAt(cells, idx)
		}
		rec.Company = optionalCell(cells, colIndex, "company")
		rec.JobTitle = optionalCell(cells, colIndex, "job_title")
		rec.Phone = optionalCell(cells, colIndex, "phone")
		records = append(records, rec)
	}
	return records
}

// headerIndex parses the header line into a column-name -> position map.
// Header names are case-insensitive.
func headerIndex(line string) map[string]int {
	index := make(map[string]int)
	for i, h := range strings.Split(strings.ToLower(line), ",") {
		name := strings.TrimSpace(h)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// splitRow splits a data line on commas and cleans each cell.
func splitRow(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.Trim(strings.TrimSpace(c), `"`)
	}
	return cells
}

// cellAt returns the cell at idx, or "" when the row is shorter.
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func optionalCell(cells []string, colIndex map[string]int, col string) *string {
	idx, ok := colIndex[col]
	if !ok {
		return nil
	}
	v := cellAt(cells, idx)
	if v == "" {
		return nil
	}
	return &v
}
