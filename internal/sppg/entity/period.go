package entity

import "fmt"

// PlanPeriod is the month/year (and optional quarter) a plan covers. It is a
// plain value so formatting never depends on the wall clock.
type PlanPeriod struct {
	Month   int
	Year    int
	Quarter *int
}

var monthNames = [13]string{"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Valid reports whether month, year and quarter are in range.
func (p PlanPeriod) Valid() bool {
	if p.Month < 1 || p.Month > 12 {
		return false
	}
	if p.Year < 2000 || p.Year > 2100 {
		return false
	}
	if p.Quarter != nil && (*p.Quarter < 1 || *p.Quarter > 4) {
		return false
	}
	return true
}

// Label renders the period for display, e.g. "Maret 2026".
func (p PlanPeriod) Label() string {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Sprintf("%d", p.Year)
	}
	return fmt.Sprintf("%s %d", monthNames[p.Month], p.Year)
}

// QuarterLabel renders the quarter, e.g. "Q1 2026", or the month label when no
// quarter is set.
func (p PlanPeriod) QuarterLabel() string {
	if p.Quarter == nil {
		return p.Label()
	}
	return fmt.Sprintf("Q%d %d", *p.Quarter, p.Year)
}
