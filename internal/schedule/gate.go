package schedule

import (
	"fmt"
	"time"

	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

// GateDecision says whether "mark complete" is currently permitted for a
// posting's application, and if not, how long the worker still has to wait.
type GateDecision struct {
	Allowed       bool
	WaitRemaining time.Duration
	EffectiveEnd  *time.Time
}

// CanMarkComplete permits completion once the posting's effective end has
// passed. Postings with no known window may be completed at any time.
func CanMarkComplete(p job.Posting, now time.Time) GateDecision {
	end := EffectiveEnd(p)
	if end == nil {
		return GateDecision{Allowed: true}
	}
	if !now.Before(*end) {
		return GateDecision{Allowed: true, EffectiveEnd: end}
	}
	return GateDecision{
		Allowed:       false,
		WaitRemaining: end.Sub(now),
		EffectiveEnd:  end,
	}
}

// FormatWait renders a remaining wait as "2h 15m", or "35 minutes" when under
// an hour. Partial minutes round up so the message never understates the wait.
func FormatWait(d time.Duration) string {
	minutes := int((d + time.Minute - 1) / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
