package scheduler

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/notifier"
)

// Dec 31 2025 is a Wednesday
var wednesday = time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)

func settings(wakeUp string, morning, evening, weekly bool) models.NotificationSettings {
	return models.NotificationSettings{
		WakeUpTime:     wakeUp,
		MorningEnabled: morning,
		EveningEnabled: evening,
		WeeklyEnabled:  weekly,
	}
}

func TestNext_Daily(t *testing.T) {
	s := New()
	tests := []struct {
		name string
		kind notifier.Kind
		now  time.Time
		want time.Time
	}{
		{
			name: "morning already passed rolls to tomorrow",
			kind: notifier.KindMorning,
			now:  wednesday,
			want: time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "morning later today",
			kind: notifier.KindMorning,
			now:  time.Date(2025, 12, 31, 5, 59, 0, 0, time.UTC),
			want: time.Date(2025, 12, 31, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the slot is not due again",
			kind: notifier.KindEvening,
			now:  time.Date(2025, 12, 31, 21, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 1, 21, 0, 0, 0, time.UTC),
		},
		{
			name: "evening later today",
			kind: notifier.KindEvening,
			now:  wednesday,
			want: time.Date(2025, 12, 31, 21, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Next(tt.kind, settings("07:00", true, true, true), tt.now)
			if err != nil {
				t.Fatalf("Next() failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNext_Weekly(t *testing.T) {
	s := New()

	got, err := s.Next(notifier.KindWeekly, settings("07:00", false, false, true), wednesday)
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	want := time.Date(2026, 1, 4, 21, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Next() = %v, want %v", got, want)
	}

	// Sunday evening after the slot moves to the next Sunday
	sunday := time.Date(2026, 1, 4, 22, 0, 0, 0, time.UTC)
	got, err = s.Next(notifier.KindWeekly, settings("07:00", false, false, true), sunday)
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	want = time.Date(2026, 1, 11, 21, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}

func TestUpcoming_OnlyEnabledSorted(t *testing.T) {
	s := New()

	got, err := s.Upcoming(settings("07:00", true, true, false), wednesday)
	if err != nil {
		t.Fatalf("Upcoming() failed: %v", err)
	}
	want := []Occurrence{
		{Kind: notifier.KindEvening, At: time.Date(2025, 12, 31, 21, 0, 0, 0, time.UTC)},
		{Kind: notifier.KindMorning, At: time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upcoming() mismatch (-want +got):\n%s", diff)
	}

	none, err := s.Upcoming(settings("07:00", false, false, false), wednesday)
	if err != nil {
		t.Fatalf("Upcoming() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no occurrences, got %v", none)
	}
}

func TestNext_UnknownKind(t *testing.T) {
	if _, err := New().Next("hourly", settings("07:00", true, true, true), wednesday); err == nil {
		t.Error("expected error for unknown kind")
	}
}
