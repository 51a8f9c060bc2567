package date

import (
	"fmt"
	"time"
)

// Range is an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, swapping them if needed.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// ParseRange parses both bounds of a range, kept in the given order: a
// range whose start is after its end contains no date.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}
	return Range{From: f, To: t}, nil
}

// ParseMonth parses "2025-01" into the range covering that month.
func ParseMonth(month string) (Range, error) {
	t, err := time.Parse("2006-1", month)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q want format %q: %w", month, "2006-01", err)
	}
	return Monthly.Range(Of(t)), nil
}

// Contains reports whether d is in the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int { return int(r.To.time().Sub(r.From.time())/(24*time.Hour)) + 1 }

// Identifier returns a short name for the range: "2025-01" for a month,
// "2025-W02" for a week, "from_to" for anything else.
func (r Range) Identifier() string {
	switch {
	case r.From == r.To:
		return r.From.String()
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		y, w := r.From.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return r.From.Layout("2006-01")
	case r.From == r.From.StartOf(Yearly) && r.To == r.From.EndOf(Yearly):
		return r.From.Layout("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}

func (r Range) String() string { return r.Identifier() }
