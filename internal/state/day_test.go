package state

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

func loadedDay(t *testing.T) DayState {
	t.Helper()
	s := NewDayState(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)).BeginLoad()
	if !s.Loading {
		t.Fatal("BeginLoad() should set Loading")
	}
	return s.DayLoaded(models.DayDetail{
		CompletedHabits: []string{"a", "b"},
		PossibleHabits: []models.HabitRecord{
			{ID: "a", Title: "Beber água"},
			{ID: "b", Title: "Exercitar"},
			{ID: "c", Title: "Ler"},
			{ID: "d", Title: "Meditar"},
		},
	})
}

func TestDayState_Load(t *testing.T) {
	s := loadedDay(t)
	if s.Loading || s.Detail == nil {
		t.Fatalf("DayLoaded() = %+v", s)
	}
	if got := s.Progress(); got != 50 {
		t.Errorf("Progress() = %d, want 50", got)
	}
	if s.Empty() {
		t.Error("Empty() = true for a day with habits")
	}

	failed := NewDayState(s.Date).BeginLoad().DayFailed(errors.New("offline"))
	if failed.Loading || failed.Err == nil || failed.Detail != nil {
		t.Errorf("DayFailed() = %+v", failed)
	}
	if failed.Progress() != 0 {
		t.Error("Progress() should be 0 before load")
	}

	empty := NewDayState(s.Date).DayLoaded(models.DayDetail{})
	if !empty.Empty() || empty.Progress() != 0 {
		t.Errorf("empty day = %+v", empty)
	}
}

func TestDayState_ToggleAcknowledged(t *testing.T) {
	s := loadedDay(t)

	off, err := s.ToggleAcknowledged("b")
	if err != nil {
		t.Fatalf("ToggleAcknowledged(b) error = %v", err)
	}
	if !slices.Equal(off.Detail.CompletedHabits, []string{"a"}) {
		t.Errorf("completed = %v, want [a]", off.Detail.CompletedHabits)
	}
	if off.Progress() != 25 {
		t.Errorf("Progress() = %d, want 25", off.Progress())
	}

	on, err := s.ToggleAcknowledged("c")
	if err != nil {
		t.Fatalf("ToggleAcknowledged(c) error = %v", err)
	}
	if !slices.Equal(on.Detail.CompletedHabits, []string{"a", "b", "c"}) {
		t.Errorf("completed = %v, want [a b c]", on.Detail.CompletedHabits)
	}

	if !slices.Equal(s.Detail.CompletedHabits, []string{"a", "b"}) {
		t.Errorf("receiver modified: %v", s.Detail.CompletedHabits)
	}

	if _, err := s.ToggleAcknowledged("zzz"); !errors.Is(err, models.ErrUnknownHabit) {
		t.Errorf("unknown habit error = %v, want ErrUnknownHabit", err)
	}
	if _, err := NewDayState(s.Date).ToggleAcknowledged("a"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("not loaded error = %v, want ErrNotLoaded", err)
	}
}

func TestDayState_ToggleFailedKeepsHabits(t *testing.T) {
	s := loadedDay(t)
	failed := s.ToggleFailed(errors.New("500"))

	if failed.Err == nil {
		t.Error("ToggleFailed() should record the error")
	}
	if !slices.Equal(failed.Detail.CompletedHabits, s.Detail.CompletedHabits) {
		t.Errorf("completed = %v, want unchanged %v", failed.Detail.CompletedHabits, s.Detail.CompletedHabits)
	}
}

func TestDayState_Editable(t *testing.T) {
	s := NewDayState(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC))

	if !s.Editable(time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC)) {
		t.Error("today should be editable")
	}
	if s.Editable(time.Date(2026, time.October, 20, 0, 0, 1, 0, time.UTC)) {
		t.Error("yesterday should be read-only")
	}
}
