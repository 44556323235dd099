package state

import (
	"errors"
	"slices"
	"time"

	"github.com/julianstephens/habitual/internal/calendar"
	"github.com/julianstephens/habitual/internal/models"
)

// ErrNotLoaded is returned when toggling before the day's habits were fetched.
var ErrNotLoaded = errors.New("day habits not loaded")

// DayState is the habit screen for a single day.
type DayState struct {
	Date    time.Time
	Loading bool
	Detail  *models.DayDetail
	Err     error
}

func NewDayState(date time.Time) DayState {
	return DayState{Date: date}
}

func (s DayState) BeginLoad() DayState {
	return DayState{Date: s.Date, Loading: true, Detail: s.Detail}
}

func (s DayState) DayLoaded(detail models.DayDetail) DayState {
	d := models.DayDetail{
		CompletedHabits: slices.Clone(detail.CompletedHabits),
		PossibleHabits:  slices.Clone(detail.PossibleHabits),
	}
	return DayState{Date: s.Date, Detail: &d}
}

func (s DayState) DayFailed(err error) DayState {
	return DayState{Date: s.Date, Detail: s.Detail, Err: err}
}

// ToggleAcknowledged applies a toggle the server has already confirmed.
// Toggles are never applied before the acknowledgement.
func (s DayState) ToggleAcknowledged(habitID string) (DayState, error) {
	if s.Detail == nil {
		return s, ErrNotLoaded
	}
	toggled, err := s.Detail.Toggle(habitID)
	if err != nil {
		return s, err
	}
	return DayState{Date: s.Date, Detail: &toggled}, nil
}

// ToggleFailed records the error and leaves the habits as they were.
func (s DayState) ToggleFailed(err error) DayState {
	return DayState{Date: s.Date, Detail: s.Detail, Err: err}
}

// Progress is the completion percentage for the day, 0 until loaded.
func (s DayState) Progress() int {
	if s.Detail == nil {
		return 0
	}
	return s.Detail.Progress()
}

// Empty reports whether the day was loaded and has no possible habits.
func (s DayState) Empty() bool {
	return s.Detail != nil && len(s.Detail.PossibleHabits) == 0
}

// Editable reports whether habits for the day may still be toggled.
func (s DayState) Editable(now time.Time) bool {
	return !calendar.IsPast(s.Date, now)
}
