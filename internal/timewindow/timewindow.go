// Package timewindow turns named timeframe selectors into absolute
// cutoff instants. Calendar-aligned selectors are computed in the fixed
// reference timezone (Europe/Paris), matching how the mission rules are
// written.
package timewindow

import (
	"fmt"
	"time"
	_ "time/tzdata" // keep Europe/Paris available in scratch containers
)

type Timeframe string

const (
	TodayMidnight      Timeframe = "today_midnight"
	LastSundayMidnight Timeframe = "last_sunday_midnight"
	Last24Hours        Timeframe = "last_24_hours"
)

const referenceZone = "Europe/Paris"

var reference = mustLoadReference()

func mustLoadReference() *time.Location {
	loc, err := time.LoadLocation(referenceZone)
	if err != nil {
		panic(fmt.Sprintf("load reference timezone %s: %v", referenceZone, err))
	}
	return loc
}

// Parse validates a selector string at the boundary. Resolve itself has
// no error conditions.
func Parse(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TodayMidnight, LastSundayMidnight, Last24Hours:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

// Resolve returns the cutoff instant for the selector. An event counts
// toward a window when its timestamp is >= the returned cutoff.
func Resolve(tf Timeframe, now time.Time) time.Time {
	local := now.In(reference)
	switch tf {
	case TodayMidnight:
		return midnight(local)
	case LastSundayMidnight:
		// Weekday() counts days since Sunday, so this lands on the
		// current day when now already is a Sunday.
		return midnight(local.AddDate(0, 0, -int(local.Weekday())))
	case Last24Hours:
		return now.Add(-24 * time.Hour)
	}
	return now
}

// Reference returns the fixed reference timezone.
func Reference() *time.Location {
	return reference
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, reference)
}
