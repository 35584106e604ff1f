package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/application"
	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

func posting(id, date, start, end string) job.Posting {
	return job.Posting{
		ID:                 common.UUID(id),
		ScheduledDate:      date,
		ScheduledStartTime: start,
		ScheduledEndTime:   end,
	}
}

func commitment(appID string, p job.Posting, status application.Status, workStatus application.WorkStatus) Commitment {
	return Commitment{
		Application: application.Application{
			ID:           common.UUID(appID),
			JobPostingID: p.ID,
			Status:       status,
			WorkStatus:   workStatus,
		},
		Posting: p,
	}
}

func TestWindowOverlaps(t *testing.T) {
	a, ok := WindowOf(posting("a", "2026-09-01", "09:00", "12:00"))
	require.True(t, ok)
	b, ok := WindowOf(posting("b", "2026-09-01", "11:00", "14:00"))
	require.True(t, ok)
	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(a))
}

func TestBackToBackWindowsDoNotOverlap(t *testing.T) {
	a, ok := WindowOf(posting("a", "2026-09-01", "09:00", "12:00"))
	require.True(t, ok)
	b, ok := WindowOf(posting("b", "2026-09-01", "12:00", "15:00"))
	require.True(t, ok)
	require.False(t, a.Overlaps(b))
	require.False(t, b.Overlaps(a))
}

func TestWindowOfRejectsInvertedWindow(t *testing.T) {
	_, ok := WindowOf(posting("a", "2026-09-01", "12:00", "09:00"))
	require.False(t, ok)

	_, ok = WindowOf(posting("a", "2026-09-01", "12:00", "12:00"))
	require.False(t, ok)
}

func TestConflictsWithOverlappingCommitment(t *testing.T) {
	target := posting("target", "2026-09-01", "10:00", "13:00")
	existing := []Commitment{
		commitment("app-1", posting("j1", "2026-09-01", "12:00", "15:00"), application.StatusAccepted, application.WorkStatusInProgress),
		commitment("app-2", posting("j2", "2026-09-01", "14:00", "16:00"), application.StatusAccepted, application.WorkStatusInProgress),
	}
	conflicts := ConflictsWith(target, existing)
	require.Len(t, conflicts, 1)
	require.Equal(t, common.UUID("app-1"), conflicts[0].Application.ID)
}

func TestConflictsWithIgnoresDifferentDates(t *testing.T) {
	target := posting("target", "2026-09-01", "10:00", "13:00")
	existing := []Commitment{
		commitment("app-1", posting("j1", "2026-09-02", "10:00", "13:00"), application.StatusAccepted, application.WorkStatusInProgress),
	}
	require.Empty(t, ConflictsWith(target, existing))
}

func TestConflictsWithIgnoresNonBlockingCommitments(t *testing.T) {
	target := posting("target", "2026-09-01", "10:00", "13:00")
	overlapping := posting("j1", "2026-09-01", "11:00", "14:00")
	existing := []Commitment{
		commitment("applied", overlapping, application.StatusApplied, application.WorkStatusNone),
		commitment("shortlisted", overlapping, application.StatusShortlisted, application.WorkStatusNone),
		commitment("rejected", overlapping, application.StatusRejected, application.WorkStatusNone),
		commitment("done", overlapping, application.StatusAccepted, application.WorkStatusCompleted),
	}
	require.Empty(t, ConflictsWith(target, existing))
}

func TestUnknownWindowsNeverConflict(t *testing.T) {
	flexible := job.Posting{ID: "flex"}
	accepted := []Commitment{
		commitment("app-1", posting("j1", "2026-09-01", "09:00", "17:00"), application.StatusAccepted, application.WorkStatusInProgress),
	}
	require.Empty(t, ConflictsWith(flexible, accepted))

	target := posting("target", "2026-09-01", "10:00", "13:00")
	unknown := []Commitment{
		commitment("app-1", job.Posting{ID: "flex"}, application.StatusAccepted, application.WorkStatusInProgress),
	}
	require.Empty(t, ConflictsWith(target, unknown))
}

func TestConflictsWithSkipsSamePosting(t *testing.T) {
	target := posting("same", "2026-09-01", "10:00", "13:00")
	existing := []Commitment{
		commitment("app-1", target, application.StatusAccepted, application.WorkStatusInProgress),
	}
	require.Empty(t, ConflictsWith(target, existing))
}

func TestConflictsAmong(t *testing.T) {
	commitments := []Commitment{
		commitment("a", posting("j1", "2026-09-01", "09:00", "12:00"), application.StatusAccepted, application.WorkStatusInProgress),
		commitment("b", posting("j2", "2026-09-01", "11:00", "14:00"), application.StatusAccepted, application.WorkStatusInProgress),
		commitment("c", posting("j3", "2026-09-01", "15:00", "18:00"), application.StatusAccepted, application.WorkStatusInProgress),
	}
	reports := ConflictsAmong(commitments)
	require.Len(t, reports, 3)

	byID := map[common.UUID]ConflictReport{}
	for _, r := range reports {
		byID[r.ApplicationID] = r
	}
	require.True(t, byID["a"].HasConflicts)
	require.Equal(t, []common.UUID{"b"}, byID["a"].ConflictingApplicationIDs)
	require.True(t, byID["b"].HasConflicts)
	require.Equal(t, []common.UUID{"a"}, byID["b"].ConflictingApplicationIDs)
	require.False(t, byID["c"].HasConflicts)
	require.Empty(t, byID["c"].ConflictingApplicationIDs)
}
