package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// ErrIncompleteHabit is returned when a new habit has no title or no weekdays.
var ErrIncompleteHabit = errors.New(constants.MsgHabitFormIncomplete)

// HabitRecord is a habit that can be completed on a given day.
type HabitRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewHabit is the body of POST /habits. WeekDays holds time.Weekday values
// (0=Sunday..6=Saturday).
type NewHabit struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

func (h *NewHabit) Validate() error {
	if strings.TrimSpace(h.Title) == "" || len(h.WeekDays) == 0 {
		return ErrIncompleteHabit
	}

	seen := make(map[int]bool, len(h.WeekDays))
	for _, wd := range h.WeekDays {
		if wd < int(time.Sunday) || wd > int(time.Saturday) {
			return fmt.Errorf("invalid weekday %d (expected 0-6)", wd)
		}
		if seen[wd] {
			return fmt.Errorf("duplicate weekday %d", wd)
		}
		seen[wd] = true
	}
	return nil
}

// Normalized returns a copy with a trimmed title and sorted weekdays.
func (h NewHabit) Normalized() NewHabit {
	days := slices.Clone(h.WeekDays)
	slices.Sort(days)
	return NewHabit{
		Title:    strings.TrimSpace(h.Title),
		WeekDays: days,
	}
}

// WeekDayNames returns the display names of the habit's weekdays.
func (h *NewHabit) WeekDayNames() []string {
	names := make([]string, 0, len(h.WeekDays))
	for _, wd := range h.WeekDays {
		if wd >= 0 && wd < constants.DaysPerWeek {
			names = append(names, constants.WeekDayNames[wd])
		}
	}
	return names
}
