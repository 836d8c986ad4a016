package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// WorkingHoursEvaluator determines whether an office is open at a reference
// instant and which schedule entry applies to that day.
type WorkingHoursEvaluator struct{}

// NewWorkingHoursEvaluator creates a new WorkingHoursEvaluator.
func NewWorkingHoursEvaluator() *WorkingHoursEvaluator {
	return &WorkingHoursEvaluator{}
}

// IsOpenAt reports whether an office with the given weekly schedule is open at
// the instant. An office is open when the instant falls inside the active
// entry for that weekday (windows whose end precedes their start wrap past
// midnight) and outside the entry's break window, if any.
func (e *WorkingHoursEvaluator) IsOpenAt(hours []domain.WorkingHour, at time.Time) bool {
	entry := e.TodayHours(hours, at)
	if entry == nil {
		return false
	}

	from, err := parseClock(entry.FromTime)
	if err != nil {
		return false
	}
	to, err := parseClock(entry.ToTime)
	if err != nil {
		return false
	}

	now := at.Hour()*60 + at.Minute()
	if !inWindow(now, from, to) {
		return false
	}

	if entry.HasBreak {
		breakFrom, errFrom := parseClock(entry.BreakFromTime)
		breakTo, errTo := parseClock(entry.BreakToTime)
		if errFrom == nil && errTo == nil && inWindow(now, breakFrom, breakTo) {
			return false
		}
	}

	return true
}

// TodayHours returns the active schedule entry for the instant's weekday,
// regardless of whether the office is currently open. Returns nil when the
// weekday has no active entry.
func (e *WorkingHoursEvaluator) TodayHours(hours []domain.WorkingHour, at time.Time) *domain.WorkingHour {
	weekday := WeekdayName(at)
	for i := range hours {
		h := &hours[i]
		if h.IsActive && strings.EqualFold(h.Weekday, weekday) {
			return h
		}
	}
	return nil
}

// WeekdayName maps an instant to the lowercase weekday name used by schedule
// entries (e.g., "monday").
func WeekdayName(at time.Time) string {
	return strings.ToLower(at.Weekday().String())
}

// inWindow reports whether a minute-of-day falls inside [from, to], treating
// windows with to < from as wrapping past midnight:
// [from, 24:00) followed by [00:00, to].
func inWindow(now, from, to int) bool {
	if to < from {
		return now >= from || now <= to
	}
	return now >= from && now <= to
}

// parseClock parses an "HH:MM" string into minutes since midnight.
func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hour*60 + minute, nil
}
