package schedule

import (
	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

// Commitment is an application joined with its posting, the unit the
// conflict resolver reasons over.
type Commitment struct {
	Application application.Application
	Posting     job.Posting
}

// blocking reports whether a commitment can collide with anything: it must
// be accepted, not yet completed, and have a known scheduled window.
func blocking(c Commitment) (Window, bool) {
	if !c.Application.IsOpenCommitment() {
		return Window{}, false
	}
	return WindowOf(c.Posting)
}

// ConflictsWith returns the commitments among existing whose windows overlap
// the target posting's window. A target or existing posting with no known
// window never conflicts.
func ConflictsWith(target job.Posting, existing []Commitment) []Commitment {
	targetWindow, ok := WindowOf(target)
	if !ok {
		return nil
	}
	var conflicts []Commitment
	for _, c := range existing {
		if c.Posting.ID == target.ID {
			continue
		}
		window, ok := blocking(c)
		if !ok {
			continue
		}
		if targetWindow.Overlaps(window) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

// ConflictReport annotates one application with the ids of overlapping
// commitments; derived on each read, never persisted.
type ConflictReport struct {
	ApplicationID             common.UUID   `json:"application_id"`
	HasConflicts              bool          `json:"has_conflicts"`
	ConflictingApplicationIDs []common.UUID `json:"conflicting_application_ids,omitempty"`
}

// ConflictsAmong computes the pairwise conflict annotation for a worker's
// commitments.
func ConflictsAmong(commitments []Commitment) []ConflictReport {
	reports := make([]ConflictReport, 0, len(commitments))
	for _, c := range commitments {
		report := ConflictReport{ApplicationID: c.Application.ID}
		window, ok := blocking(c)
		if ok {
			for _, other := range commitments {
				if other.Application.ID == c.Application.ID {
					continue
				}
				otherWindow, otherOK := blocking(other)
				if otherOK && window.Overlaps(otherWindow) {
					report.ConflictingApplicationIDs = append(report.ConflictingApplicationIDs, other.Application.ID)
				}
			}
		}
		report.HasConflicts = len(report.ConflictingApplicationIDs) > 0
		reports = append(reports, report)
	}
	return reports
}
