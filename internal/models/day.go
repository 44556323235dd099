package models

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/habitual/internal/progress"
)

// ErrUnknownHabit is returned when toggling a habit that is not possible on the day.
var ErrUnknownHabit = errors.New("habit is not scheduled for this day")

// DaySummaryEntry is one day's aggregate habit completion from GET /summary.
type DaySummaryEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Amount    int       `json:"amount"`
	Completed int       `json:"completed"`
}

func (e *DaySummaryEntry) Validate() error {
	if err := progress.Validate(e.Amount, e.Completed); err != nil {
		return fmt.Errorf("summary entry %s: %w", e.ID, err)
	}
	return nil
}

// Progress is the day's completion percentage.
func (e *DaySummaryEntry) Progress() int {
	return progress.Percentage(e.Amount, e.Completed)
}

// DayDetail is the habit list for one day from GET /day. CompletedHabits is
// always a subset of the ids in PossibleHabits.
type DayDetail struct {
	CompletedHabits []string      `json:"completedHabits"`
	PossibleHabits  []HabitRecord `json:"possibleHabits"`
}

func (d *DayDetail) Validate() error {
	seen := make(map[string]bool, len(d.CompletedHabits))
	for _, id := range d.CompletedHabits {
		if seen[id] {
			return fmt.Errorf("habit %s completed twice", id)
		}
		seen[id] = true
		if !d.IsPossible(id) {
			return fmt.Errorf("completed habit %s: %w", id, ErrUnknownHabit)
		}
	}
	return nil
}

// IsPossible reports whether id is one of the day's possible habits.
func (d *DayDetail) IsPossible(id string) bool {
	return slices.ContainsFunc(d.PossibleHabits, func(h HabitRecord) bool {
		return h.ID == id
	})
}

// IsCompleted reports whether id is marked complete.
func (d *DayDetail) IsCompleted(id string) bool {
	return slices.Contains(d.CompletedHabits, id)
}

// Progress is the completion percentage; 0 while nothing is completed.
func (d *DayDetail) Progress() int {
	if len(d.CompletedHabits) == 0 {
		return 0
	}
	return progress.Percentage(len(d.PossibleHabits), len(d.CompletedHabits))
}

// Toggle returns a copy with id's completion flipped. The receiver is not
// modified.
func (d DayDetail) Toggle(id string) (DayDetail, error) {
	if !d.IsPossible(id) {
		return d, fmt.Errorf("toggle %s: %w", id, ErrUnknownHabit)
	}

	return DayDetail{
		CompletedHabits: ToggleMember(d.CompletedHabits, id),
		PossibleHabits:  slices.Clone(d.PossibleHabits),
	}, nil
}

// ToggleMember removes v from set when present and appends it otherwise. It
// always returns a new slice.
func ToggleMember[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, c := range set {
		if c == v {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
