package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/state"
	"github.com/julianstephens/habitual/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (today, yesterday, YYYY-MM-DD)." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	now := ctx.Now()
	date, err := utils.ParseDayArg(c.Date, now)
	if err != nil {
		return err
	}

	day, err := loadDay(ctx, date)
	if err != nil {
		return err
	}

	printDay(ctx, day, now)
	return nil
}

// loadDay runs the fetch transition for a day screen.
func loadDay(ctx *Context, date time.Time) (state.DayState, error) {
	day := state.NewDayState(date).BeginLoad()

	reqCtx, cancel := ctx.requestContext()
	defer cancel()

	detail, err := ctx.API.Day(reqCtx, date)
	if err != nil {
		day = day.DayFailed(err)
		return day, day.Err
	}
	day = day.DayLoaded(detail)
	logger.Debug("Day loaded", "date", date.Format(constants.DateFormat), "possible", len(detail.PossibleHabits), "completed", len(detail.CompletedHabits))
	return day, nil
}

func printDay(ctx *Context, day state.DayState, now time.Time) {
	weekday := strings.ToLower(constants.WeekDayNames[day.Date.Weekday()])
	ctx.println(mutedStyle.Render(weekday))
	ctx.println(headerStyle.Render(day.Date.Format(constants.DisplayDayFormat)))
	ctx.printf("%s %d%%\n\n", barStyle.Render(progressBar(day.Progress())), day.Progress())

	if day.Empty() {
		ctx.println(constants.MsgNoHabits)
		return
	}

	editable := day.Editable(now)
	for _, h := range day.Detail.PossibleHabits {
		box := "[ ]"
		if day.Detail.IsCompleted(h.ID) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, h.Title)
		if !editable {
			line = mutedStyle.Render(line)
		}
		ctx.printf("%s  %s\n", line, mutedStyle.Render(h.ID))
	}

	if !editable {
		ctx.println()
		ctx.println(warningStyle.Render(constants.MsgPastDayReadOnly))
	}
}
