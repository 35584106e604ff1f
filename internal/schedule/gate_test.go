package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VijeshVS/LocalHire-sub001/internal/domain/job"
)

func mustAt(t *testing.T, date, clock string) time.Time {
	t.Helper()
	at, err := ParseAt(date, clock)
	require.NoError(t, err)
	return at
}

func f64(v float64) *float64 { return &v }

func TestEffectiveEndPrefersExplicitCompletion(t *testing.T) {
	explicit := mustAt(t, "2026-09-01", "12:00")
	p := job.Posting{
		ScheduledDate:        "2026-09-01",
		ScheduledStartTime:   "09:00",
		ScheduledEndTime:     "17:00",
		ExpectedCompletionAt: &explicit,
	}
	end := EffectiveEnd(p)
	require.NotNil(t, end)
	require.True(t, end.Equal(explicit), "explicit completion timestamp wins over date+end time")
}

func TestEffectiveEndFromEndTime(t *testing.T) {
	p := job.Posting{
		ScheduledDate:      "2026-09-01",
		ScheduledStartTime: "09:00",
		ScheduledEndTime:   "17:00",
		DurationHours:      f64(2),
	}
	end := EffectiveEnd(p)
	require.NotNil(t, end)
	require.True(t, end.Equal(mustAt(t, "2026-09-01", "17:00")), "end time wins over duration")
}

func TestEffectiveEndFromDuration(t *testing.T) {
	p := job.Posting{
		ScheduledDate:      "2026-09-01",
		ScheduledStartTime: "09:00",
		DurationHours:      f64(2.5),
	}
	end := EffectiveEnd(p)
	require.NotNil(t, end)
	require.True(t, end.Equal(mustAt(t, "2026-09-01", "11:30")))
}

func TestEffectiveEndUnknown(t *testing.T) {
	require.Nil(t, EffectiveEnd(job.Posting{}))
	require.Nil(t, EffectiveEnd(job.Posting{ScheduledDate: "2026-09-01"}))
	require.Nil(t, EffectiveEnd(job.Posting{ScheduledStartTime: "09:00", DurationHours: f64(2)}))
}

func TestCanMarkCompleteGate(t *testing.T) {
	p := job.Posting{
		ScheduledDate:      "2026-09-01",
		ScheduledStartTime: "09:00",
		ScheduledEndTime:   "17:00",
	}
	end := mustAt(t, "2026-09-01", "17:00")

	before := CanMarkComplete(p, end.Add(-time.Second))
	require.False(t, before.Allowed)
	require.Equal(t, time.Second, before.WaitRemaining)
	require.NotNil(t, before.EffectiveEnd)

	atEnd := CanMarkComplete(p, end)
	require.True(t, atEnd.Allowed, "completion is allowed exactly at the scheduled end")

	after := CanMarkComplete(p, end.Add(time.Second))
	require.True(t, after.Allowed)
}

func TestCanMarkCompleteFlexibleSchedule(t *testing.T) {
	decision := CanMarkComplete(job.Posting{Title: "flexible"}, time.Now())
	require.True(t, decision.Allowed)
	require.Nil(t, decision.EffectiveEnd)
}

func TestFormatWait(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{35 * time.Minute, "35 minutes"},
		{59 * time.Minute, "59 minutes"},
		{59*time.Minute + 30*time.Second, "1h 0m"},
		{time.Hour, "1h 0m"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{time.Second, "1 minutes"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatWait(tc.d))
	}
}
