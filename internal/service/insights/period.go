package insights

import (
	"fmt"
	"time"

	"github.com/skyline-media/revenue-insights/internal/domain"
)

// Comparison windows are shifted back 364 days (52 full weeks) rather than one
// calendar year. That keeps day-of-week alignment for the week-over-week
// deltas and guarantees the comparison window has the same day count as the
// current one, leap years included. The same policy applies to every view.
const comparisonOffsetDays = 364

const defaultWindowDays = 90

const dateLayout = "2006-01-02"

// Period is a closed date range tagged with a label.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) Info() domain.PeriodInfo {
	return domain.PeriodInfo{
		Label:     p.Label,
		StartDate: p.Start.Format(dateLayout),
		EndDate:   p.End.Format(dateLayout),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolvePeriods derives the current and comparison periods. Zero start/end
// default to the trailing 90 days ending at now.
func ResolvePeriods(start, end, now time.Time) (Period, Period, error) {
	if end.IsZero() {
		end = truncateToDay(now)
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -(defaultWindowDays - 1))
	}

	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return Period{}, Period{}, fmt.Errorf("end date %s before start date %s", end.Format(dateLayout), start.Format(dateLayout))
	}

	current := Period{Label: "current", Start: start, End: end}
	comparison := Period{
		Label: "comparison",
		Start: start.AddDate(0, 0, -comparisonOffsetDays),
		End:   end.AddDate(0, 0, -comparisonOffsetDays),
	}

	return current, comparison, nil
}

// monthKey buckets a date into its calendar month, e.g. "2025-03".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// monthKeys lists every calendar month touched by the period, in order.
func monthKeys(p Period) []string {
	keys := make([]string, 0, 12)
	cursor := time.Date(p.Start.Year(), p.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(p.End) {
		keys = append(keys, monthKey(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}

// weekIndex numbers 7-day blocks counted back from the period end, so block 0
// is the most recent full week. Dates in a partial leading block get the
// index of that block anyway; callers drop incomplete blocks themselves.
func weekIndex(t time.Time, p Period) int {
	return int(p.End.Sub(truncateToDay(t)).Hours()/24) / 7
}

// fullWeeks is how many complete 7-day blocks the period holds.
func fullWeeks(p Period) int {
	return p.Days() / 7
}
