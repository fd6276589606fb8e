// Command seedrates converts the published statutory rate schedule Excel
// file into a SQL seed for the rate_overrides table. Only keys the engine
// recognizes are emitted; anything else in the sheet is reported and skipped.
// Usage: go run ./cmd/seedrates [schedule.xlsx]
// Output: db/seeds/rate_overrides.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"taxara/internal/engine"
)

type rateEntry struct {
	key   string
	value float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "statutory_rate_schedule.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/rate_overrides.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, skipped, err := parseScheduleSheet(f)
	if err != nil {
		return fmt.Errorf("parse schedule sheet: %w", err)
	}
	log.Printf("schedule sheet: %d entries, %d skipped", len(entries), skipped)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	b.WriteString("-- Rate override seed data generated from the statutory schedule.\n")
	fmt.Fprintf(&b, "-- %d entries. Run: make seed-rates\n", len(entries))
	b.WriteString("BEGIN;\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b,
			"INSERT INTO rate_overrides (key, value, updated_by, updated_at)\n"+
				"  VALUES ('%s', %g, '00000000-0000-0000-0000-000000000000', NOW())\n"+
				"  ON CONFLICT (key) WHERE tenant_id IS NULL DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();\n",
			e.key, e.value)
	}

	b.WriteString("\nCOMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Printf("Generated %d overrides in %s", len(entries), outPath)
	return nil
}

// parseScheduleSheet reads the first sheet. Columns: A(0)=override key,
// B(1)=value (plain number or percentage like "7.5%"). Data starts at row
// index 1 under a header row.
func parseScheduleSheet(f *excelize.File) ([]rateEntry, int, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, err
	}

	var entries []rateEntry
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}

		key := strings.TrimSpace(strings.ToLower(row[0]))
		if key == "" {
			continue
		}
		if !engine.KnownOverrideKey(key) {
			log.Printf("row %d: unknown key %q, skipping", i+1, key)
			skipped++
			continue
		}

		value, ok := parseValue(row[1])
		if !ok {
			log.Printf("row %d: unparseable value %q for key %q, skipping", i+1, row[1], key)
			skipped++
			continue
		}
		entries = append(entries, rateEntry{key: key, value: value})
	}
	return entries, skipped, nil
}

// parseValue accepts "0.075", "7.5%", or "25,000,000".
func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		v /= 100
	}
	return v, true
}
