package core

import (
	"fmt"
	"time"
)

// Month is the cursor the monthly views derive from: a (year, month) pair
// serialized as YYYY-MM. It is deliberately not persisted; every session
// starts at the current calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth returns the month containing today.
func CurrentMonth() Month { return MonthOf(time.Now()) }

// ParseMonth parses a strict YYYY-MM key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", s, "2006-01", err)
	}
	return MonthOf(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Days returns the number of calendar days in the month, leap years included.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns the first day of the month.
func (m Month) First() Date { return NewDate(m.Year, m.Month, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return NewDate(m.Year, m.Month, m.Days()) }

// Contains reports whether d falls inside the month window. Zero dates are
// never contained.
func (m Month) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return d.Year() == m.Year && d.Time.Month() == m.Month
}
