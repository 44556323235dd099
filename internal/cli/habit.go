package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/calendar"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/state"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Create a new recurring habit."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion of a habit."`
}

type HabitAddCmd struct {
	Title    string `arg:"" help:"Habit title."`
	WeekDays string `name:"week-days" short:"w" help:"Comma-separated weekdays (e.g. mon,wed,fri or 1,3,5)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	form := state.HabitForm{}.SetTitle(c.Title)

	weekdays, err := ParseWeekdays(c.WeekDays)
	if err != nil {
		return err
	}
	for _, wd := range weekdays {
		if !form.IsChecked(wd) {
			form = form.ToggleWeekDay(wd)
		}
	}

	req, err := form.Request()
	if err != nil {
		if errors.Is(err, models.ErrIncompleteHabit) {
			ctx.println(warningStyle.Render(constants.MsgHabitFormIncomplete))
		}
		return err
	}

	reqCtx, cancel := ctx.requestContext()
	defer cancel()

	created, err := ctx.API.CreateHabit(reqCtx, req)
	if err != nil {
		return err
	}

	logger.Info("Habit created", "id", created.ID, "title", created.Title, "week_days", req.WeekDays)
	ctx.println(constants.MsgHabitCreated)
	ctx.printf("%s: %s\n", created.Title, strings.Join(req.WeekDayNames(), ", "))
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	now := ctx.Now()

	day, err := loadDay(ctx, calendar.StartOfDay(now))
	if err != nil {
		return err
	}

	habit, err := findHabit(day.Detail, c.Habit)
	if err != nil {
		return err
	}

	reqCtx, cancel := ctx.requestContext()
	defer cancel()

	if err := ctx.API.ToggleHabit(reqCtx, habit.ID); err != nil {
		day = day.ToggleFailed(err)
		return day.Err
	}

	// Only reconcile local state after the server acknowledged the toggle.
	day, err = day.ToggleAcknowledged(habit.ID)
	if err != nil {
		return err
	}

	done := day.Detail.IsCompleted(habit.ID)
	logger.Info("Habit toggled", "id", habit.ID, "completed", done)

	if done {
		ctx.printf("[x] %s\n", habit.Title)
	} else {
		ctx.printf("[ ] %s\n", habit.Title)
	}
	ctx.printf("%s %d%%\n", barStyle.Render(progressBar(day.Progress())), day.Progress())
	return nil
}

// findHabit resolves a habit by exact id, then by case-insensitive title.
func findHabit(detail *models.DayDetail, ref string) (models.HabitRecord, error) {
	ref = strings.TrimSpace(ref)
	for _, h := range detail.PossibleHabits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range detail.PossibleHabits {
		if strings.EqualFold(h.Title, ref) {
			return h, nil
		}
	}
	return models.HabitRecord{}, fmt.Errorf("habit %q: %w", ref, models.ErrUnknownHabit)
}
