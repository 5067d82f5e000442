package dailylogservice

import (
	"errors"
	"sort"
	"time"
)

// ErrDuplicateDate signals two records for the same calendar day, which the
// unique (user, date) constraint should have made impossible.
var ErrDuplicateDate = errors.New("duplicate daily record date")

// ErrFutureDate signals a record dated after today, which the upsert
// validation should have made impossible.
var ErrFutureDate = errors.New("daily record dated after today")

// dayNumber collapses a timestamp to a calendar-day ordinal so gaps between
// dates are plain integer subtraction, immune to DST boundaries.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// StreakFor computes the current and longest consecutive-day streaks over
// the record dates, anchored at today.
//
// The longest streak is a pure historical scan over adjacent pairs. The
// current streak is a second, separately anchored scan: it starts from today
// rather than from the most recent record, so a streak stays alive through a
// day whose record has not been written yet. Collapsing the two passes into
// one breaks exactly that boundary.
func StreakFor(dates []time.Time, today time.Time) (current, longest int, err error) {
	if len(dates) == 0 {
		return 0, 0, nil
	}

	days := make([]int64, len(dates))
	for i, d := range dates {
		days[i] = dayNumber(d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1] {
			return 0, 0, ErrDuplicateDate
		}
	}
	if days[0] > dayNumber(today) {
		return 0, 0, ErrFutureDate
	}

	// Historical pass: longest run of exactly-one-day gaps.
	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Current pass: walk from the most recent record, but only if that
	// record is today or yesterday.
	if dayNumber(today)-days[0] > 1 {
		return 0, longest, nil
	}
	current = 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		current++
	}
	return current, longest, nil
}
