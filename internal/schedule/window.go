package schedule

import (
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Window is a half-open scheduled interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows share any instant. Back-to-back
// windows (one's end equals the other's start) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// WindowOf resolves a posting's scheduled window. Both a start and an end
// must be derivable; postings with a flexible or unknown schedule report
// ok=false and are treated as "unknown, assume no conflict".
func WindowOf(p job.Posting) (Window, bool) {
	start, ok := startOf(p)
	if !ok {
		return Window{}, false
	}
	end, ok := endOf(p, start)
	if !ok || !end.After(start) {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}

// EffectiveEnd resolves the earliest timestamp at which a posting's work can
// be marked complete. Resolution order: an explicit precomputed completion
// timestamp, then date+end time, then date+start time+duration. nil means no
// window is known.
func EffectiveEnd(p job.Posting) *time.Time {
	if p.ExpectedCompletionAt != nil {
		end := *p.ExpectedCompletionAt
		return &end
	}
	start, startKnown := startOf(p)
	if p.ScheduledDate != "" && p.ScheduledEndTime != "" {
		if end, err := ParseAt(p.ScheduledDate, p.ScheduledEndTime); err == nil {
			return &end
		}
	}
	if startKnown && p.DurationHours != nil && *p.DurationHours > 0 {
		end := start.Add(time.Duration(*p.DurationHours * float64(time.Hour)))
		return &end
	}
	return nil
}

func startOf(p job.Posting) (time.Time, bool) {
	if p.ScheduledDate == "" || p.ScheduledStartTime == "" {
		return time.Time{}, false
	}
	start, err := ParseAt(p.ScheduledDate, p.ScheduledStartTime)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

func endOf(p job.Posting, start time.Time) (time.Time, bool) {
	if p.ScheduledEndTime != "" {
		end, err := ParseAt(p.ScheduledDate, p.ScheduledEndTime)
		if err == nil {
			return end, true
		}
	}
	if p.DurationHours != nil && *p.DurationHours > 0 {
		return start.Add(time.Duration(*p.DurationHours * float64(time.Hour))), true
	}
	if p.ExpectedCompletionAt != nil {
		return *p.ExpectedCompletionAt, true
	}
	return time.Time{}, false
}

// ParseAt combines a calendar date ("2006-01-02") and a wall-clock time
// ("15:04") in the server's location.
func ParseAt(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, time.Local)
}
