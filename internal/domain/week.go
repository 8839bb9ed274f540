package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const weekIDPrefix = "week-"

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// WeekPeriod is a Monday-anchored seven day window [Start, EndExclusive).
// week-0 is the week containing "now"; week-N is N weeks earlier.
type WeekPeriod struct {
	ID           string    `json:"id"`
	Start        time.Time `json:"start"`
	EndExclusive time.Time `json:"endExclusive"`
}

// WeekID formats the id of the week n periods before the current one.
func WeekID(n int) string {
	return weekIDPrefix + strconv.Itoa(n)
}

// ParseWeekIndex extracts N from a week-N id.
func ParseWeekIndex(id string) (int, error) {
	rest, ok := strings.CutPrefix(id, weekIDPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeek, id)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || rest != strconv.Itoa(n) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeek, id)
	}
	return n, nil
}

// WeekByID resolves a week id relative to now. The location of now decides where
// Monday midnight falls.
func WeekByID(id string, now time.Time) (WeekPeriod, error) {
	n, err := ParseWeekIndex(id)
	if err != nil {
		return WeekPeriod{}, err
	}
	return weekAt(n, now), nil
}

// RecentWeeks lists week-0 to week-(count-1), most recent first.
func RecentWeeks(now time.Time, count int) []WeekPeriod {
	weeks := make([]WeekPeriod, 0, count)
	for i := 0; i < count; i++ {
		weeks = append(weeks, weekAt(i, now))
	}
	return weeks
}

// WeekOf returns the period containing t. Instants after the current week map to week-0.
func WeekOf(t, now time.Time) WeekPeriod {
	current := weekAt(0, now)
	if !t.Before(current.Start) {
		return current
	}
	// Daylight saving shifts can put the estimate one week off.
	n := int(current.Start.Sub(t).Hours()/(7*24)) + 1
	for w := weekAt(n, now); !w.Contains(t); w = weekAt(n, now) {
		if t.Before(w.Start) {
			n++
		} else {
			n--
		}
	}
	return weekAt(n, now)
}

// Contains reports whether t falls inside the period.
func (w WeekPeriod) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.EndExclusive)
}

// Label renders the period for display, with the Sunday before EndExclusive as last day.
func (w WeekPeriod) Label() string {
	return fmt.Sprintf("Lun %s — Dom %s", shortDate(w.Start), shortDate(w.EndExclusive.AddDate(0, 0, -1)))
}

func weekAt(n int, now time.Time) WeekPeriod {
	start := startOfWeek(now).AddDate(0, 0, -7*n)
	return WeekPeriod{
		ID:           WeekID(n),
		Start:        start,
		EndExclusive: start.AddDate(0, 0, 7),
	}
}

func startOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	// Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func shortDate(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), shortMonths[t.Month()-1])
}
