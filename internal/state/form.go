package state

import (
	"slices"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

// HabitForm is the new-habit form: a title and the selected weekdays.
type HabitForm struct {
	Title    string
	WeekDays []int
}

func (f HabitForm) SetTitle(title string) HabitForm {
	return HabitForm{Title: title, WeekDays: slices.Clone(f.WeekDays)}
}

// ToggleWeekDay selects wd when unselected and clears it otherwise.
func (f HabitForm) ToggleWeekDay(wd time.Weekday) HabitForm {
	return HabitForm{Title: f.Title, WeekDays: models.ToggleMember(f.WeekDays, int(wd))}
}

func (f HabitForm) IsChecked(wd time.Weekday) bool {
	return slices.Contains(f.WeekDays, int(wd))
}

// Request builds the POST /habits body, or returns models.ErrIncompleteHabit
// when the title or weekdays are missing.
func (f HabitForm) Request() (models.NewHabit, error) {
	req := models.NewHabit{Title: f.Title, WeekDays: slices.Clone(f.WeekDays)}
	if err := req.Validate(); err != nil {
		return models.NewHabit{}, err
	}
	return req.Normalized(), nil
}

// Reset clears the form after a successful submit.
func (f HabitForm) Reset() HabitForm {
	return HabitForm{}
}
