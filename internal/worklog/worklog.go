// Package worklog edits a month's fixed list of daily entries and keeps the
// derived hours and income fields in step with the user's input.
package worklog

import (
	"errors"
	"fmt"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
)

// DaysPerMonth is the number of rows kept for every month, regardless of
// the calendar length of the month.
const DaysPerMonth = 31

// Field names accepted by Update.
const (
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldRate    = "rate"
	FieldProject = "project"
	FieldNotes   = "notes"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrDayOutOfRange = errors.New("day out of range")
)

// NewMonth returns DaysPerMonth empty rows numbered from 1.
func NewMonth() []model.DailyEntry {
	entries := make([]model.DailyEntry, DaysPerMonth)
	for i := range entries {
		entries[i].Day = i + 1
	}
	return entries
}

// Update returns a copy of entries with one field of the given day replaced.
// Start and end edits recompute hours; start, end and rate edits recompute
// income.
func Update(entries []model.DailyEntry, day int, field, value string) ([]model.DailyEntry, error) {
	idx, err := indexOf(entries, day)
	if err != nil {
		return nil, err
	}
	out := make([]model.DailyEntry, len(entries))
	copy(out, entries)
	e := out[idx]

	switch field {
	case FieldStart:
		e.StartTime = value
		e.TotalHours = timecalc.CalculateHours(e.StartTime, e.EndTime)
	case FieldEnd:
		e.EndTime = value
		e.TotalHours = timecalc.CalculateHours(e.StartTime, e.EndTime)
	case FieldRate:
		e.HourlyRate = timecalc.ParseRate(value)
	case FieldProject:
		e.Project = value
	case FieldNotes:
		e.Notes = value
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownField, field)
	}

	switch field {
	case FieldStart, FieldEnd, FieldRate:
		e.Income = income(e)
	}
	out[idx] = e
	return out, nil
}

// Clear returns a copy of entries with the given day reset to an empty row.
func Clear(entries []model.DailyEntry, day int) ([]model.DailyEntry, error) {
	idx, err := indexOf(entries, day)
	if err != nil {
		return nil, err
	}
	out := make([]model.DailyEntry, len(entries))
	copy(out, entries)
	out[idx] = model.DailyEntry{Day: day}
	return out, nil
}

// Blank reports whether no row of entries carries any input.
func Blank(entries []model.DailyEntry) bool {
	for _, e := range entries {
		if !e.IsEmpty() {
			return false
		}
	}
	return true
}

// Normalize turns a stored collection into a full month: one row per day
// 1..DaysPerMonth in day order, with hours and income recomputed from the
// raw input fields. Rows with a day outside the range are dropped; for a
// duplicated day the last row wins.
func Normalize(entries []model.DailyEntry) []model.DailyEntry {
	out := NewMonth()
	for _, e := range entries {
		if e.Day < 1 || e.Day > DaysPerMonth {
			continue
		}
		e.HourlyRate = timecalc.Coerce(e.HourlyRate)
		if e.HourlyRate < 0 {
			e.HourlyRate = 0
		}
		e.TotalHours = timecalc.CalculateHours(e.StartTime, e.EndTime)
		e.Income = income(e)
		out[e.Day-1] = e
	}
	return out
}

func income(e model.DailyEntry) float64 {
	return timecalc.Coerce(e.HourlyRate) * timecalc.Coerce(e.TotalHours)
}

func indexOf(entries []model.DailyEntry, day int) (int, error) {
	if day < 1 || day > DaysPerMonth {
		return 0, fmt.Errorf("%w: %d (expected 1-%d)", ErrDayOutOfRange, day, DaysPerMonth)
	}
	for i, e := range entries {
		if e.Day == day {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: day %d not in work log", ErrDayOutOfRange, day)
}
