// Package schedule computes next fire times for recurring campaign rules.
// All functions are pure: no clocks, no stores, no side effects.
package schedule

import (
	"time"

	"push-server/internal/store"
)

// NextFireTime computes when a recurring rule fires next, relative to ref.
//
// The reference is either "cold" (now, when arming a campaign that has never
// run) or "warm" (the previous scheduled fire time, after a successful run).
// Warm references keep recurring campaigns from drifting when the scheduler
// poll is late: the next fire is derived from when the campaign was meant to
// fire, not from when it actually did.
//
// Malformed or missing sub-fields fall back to defaults rather than failing:
// hour 0, minute 0, day_of_week 0 (Sunday), day_of_month 1.
func NextFireTime(rule store.RecurringSchedule, ref time.Time) time.Time {
	switch rule.Frequency {
	case store.FrequencyWeekly:
		return nextWeekly(rule, ref)
	case store.FrequencyMonthly:
		return nextMonthly(rule, ref)
	case store.FrequencyInterval:
		return nextInterval(rule, ref)
	default:
		// Daily is also the fallback for an unknown frequency; firing once a
		// day is the least surprising interpretation of a damaged rule.
		return nextDaily(rule, ref)
	}
}

func nextDaily(rule store.RecurringSchedule, ref time.Time) time.Time {
	hour, minute := clockFields(rule)
	target := at(ref, ref.Day(), hour, minute)
	if target.After(ref) {
		return target
	}
	return target.AddDate(0, 0, 1)
}

func nextWeekly(rule store.RecurringSchedule, ref time.Time) time.Time {
	hour, minute := clockFields(rule)
	dow := rule.DayOfWeek
	if dow < 0 || dow > 6 {
		dow = 0
	}

	daysAhead := (dow - int(ref.Weekday()) + 7) % 7
	target := at(ref, ref.Day()+daysAhead, hour, minute)
	if daysAhead == 0 && !target.After(ref) {
		target = target.AddDate(0, 0, 7)
	}
	return target
}

func nextMonthly(rule store.RecurringSchedule, ref time.Time) time.Time {
	hour, minute := clockFields(rule)
	day := rule.DayOfMonth
	if day < 1 {
		day = 1
	}

	// Clamp to the month's length so day 31 fires on Feb 28/29 instead of
	// rolling into March.
	target := at(ref, clampDay(day, ref.Year(), ref.Month()), hour, minute)
	if target.After(ref) {
		return target
	}

	firstOfNext := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 1, 0)
	return at(firstOfNext, clampDay(day, firstOfNext.Year(), firstOfNext.Month()), hour, minute)
}

func nextInterval(rule store.RecurringSchedule, ref time.Time) time.Time {
	// No prior fire means fire immediately.
	if rule.LastSent == nil {
		return ref
	}

	value := rule.IntervalValue
	if value < 1 {
		value = 1
	}

	var unit time.Duration
	switch rule.IntervalUnit {
	case store.IntervalUnitHours:
		unit = time.Hour
	case store.IntervalUnitDays:
		unit = 24 * time.Hour
	default:
		unit = time.Minute
	}

	return rule.LastSent.Add(time.Duration(value) * unit)
}

func clockFields(rule store.RecurringSchedule) (hour, minute int) {
	hour, minute = rule.Hour, rule.Minute
	if hour < 0 || hour > 23 {
		hour = 0
	}
	if minute < 0 || minute > 59 {
		minute = 0
	}
	return hour, minute
}

// at builds a timestamp in ref's month/year and location for the given day.
// Day values outside the month are normalized by time.Date, which callers
// rely on for +N day arithmetic.
func at(ref time.Time, day, hour, minute int) time.Time {
	return time.Date(ref.Year(), ref.Month(), day, hour, minute, 0, 0, ref.Location())
}

func clampDay(day, year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
