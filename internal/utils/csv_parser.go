// Package utils provides logging and intake parsing helpers for the visa eligibility engine.
package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"visa-eligibility-engine/internal/models"
)

// CSVParser errors
var (
	ErrEmptyCSV       = errors.New("CSV content is empty")
	ErrMissingColumns = errors.New("missing required columns")
	ErrNoDataRows     = errors.New("CSV file contains no data rows")
)

// RequiredColumns are the intake columns every screening file must carry.
// Cells may still be blank; a blank row simply yields no recommendations.
var RequiredColumns = []string{
	"age_band",
	"location",
	"savings_band",
	"income_type",
}

// ColumnAliases maps alternative column names to standard names.
var ColumnAliases = map[string]string{
	// seeker id aliases
	"id":        "seeker_id",
	"seekerid":  "seeker_id",
	"seeker id": "seeker_id",
	"user_id":   "seeker_id",
	"name":      "seeker_id",

	// age aliases
	"age":      "age_band",
	"ageband":  "age_band",
	"age band": "age_band",

	// location aliases
	"current_location": "location",
	"where":            "location",

	// savings aliases
	"savings":      "savings_band",
	"savingsband":  "savings_band",
	"savings band": "savings_band",

	// income aliases
	"income":        "income_type",
	"incometype":    "income_type",
	"income type":   "income_type",
	"income_source": "income_type",

	// optional columns
	"visa_purpose":  "purpose",
	"goal":          "purpose",
	"stay_duration": "duration",
	"duration_band": "duration",
	"country":       "nationality",
	"passport":      "nationality",
	"options":       "flags",
	"extras":        "flags",
}

// IntakeRow is one seeker's answers from a screening file.
type IntakeRow struct {
	Line     int
	SeekerID string
	State    models.EligibilityState
}

// CSVParser handles parsing of intake CSV files.
type CSVParser struct {
	columnMapping map[string]int
}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{
		columnMapping: make(map[string]int),
	}
}

// ParseIntakes parses CSV content into intake rows.
// Flags are separated by ';' or '|' inside their cell.
func (p *CSVParser) ParseIntakes(r io.Reader) ([]IntakeRow, []error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, []error{ErrEmptyCSV}
	}
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read header: %w", err)}
	}

	if err := p.buildColumnMapping(header); err != nil {
		return nil, []error{err}
	}

	var rows []IntakeRow
	var parseErrors []error
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		row := p.parseRow(record)
		row.Line = lineNum
		if row.SeekerID == "" {
			row.SeekerID = fmt.Sprintf("row-%d", lineNum)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 && len(parseErrors) == 0 {
		return nil, []error{ErrNoDataRows}
	}

	return rows, parseErrors
}

// buildColumnMapping creates a mapping of standard column names to their indices.
func (p *CSVParser) buildColumnMapping(header []string) error {
	p.columnMapping = make(map[string]int)

	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		if alias, ok := ColumnAliases[normalized]; ok {
			normalized = alias
		}
		p.columnMapping[normalized] = i
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := p.columnMapping[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return nil
}

// parseRow reads a record; absent or short columns become blank answers.
func (p *CSVParser) parseRow(record []string) IntakeRow {
	get := func(column string) string {
		idx, ok := p.columnMapping[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	return IntakeRow{
		SeekerID: get("seeker_id"),
		State: models.EligibilityState{
			AgeBand:     get("age_band"),
			Purpose:     get("purpose"),
			Nationality: get("nationality"),
			IncomeType:  get("income_type"),
			SavingsBand: get("savings_band"),
			Location:    get("location"),
			Duration:    get("duration"),
			Flags:       splitFlags(get("flags")),
		},
	}
}

func splitFlags(cell string) []string {
	if cell == "" {
		return nil
	}

	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == '|'
	})

	flags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			flags = append(flags, f)
		}
	}
	return flags
}
