package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"
	"keyworker-data/internal/export"
	"keyworker-data/internal/repository"
)

// Writes one form's export snapshot to a spreadsheet file.
func main() {
	residentID := flag.Int64("resident", 0, "resident id (required)")
	monthYear := flag.String("month", "", `month key, e.g. "March 2024" (required)`)
	out := flag.String("out", "", "output .xlsx path (required)")
	flag.Parse()

	if *residentID == 0 || *monthYear == "" || *out == "" {
		fmt.Fprintln(os.Stderr, `usage: export-form -resident <id> -month "March 2024" -out form.xlsx`)
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database %s: %v\n", cfg.Database.Path, err)
		os.Exit(1)
	}
	defer db.Close()

	forms := repository.NewSQLiteFormsRepository(db)
	snap, err := forms.Snapshot(context.Background(), *residentID, *monthYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}
	if snap == nil {
		fmt.Fprintf(os.Stderr, "no form found for resident %d, month %q\n", *residentID, *monthYear)
		os.Exit(1)
	}

	data, err := export.FormWorkbook(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render workbook: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Exported form for %s (%s) to %s\n", snap.Resident.Name, snap.MonthYear, *out)
}
