package cli

import (
	"strings"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/progress"
	"github.com/julianstephens/habitual/internal/state"
)

type SummaryCmd struct {
	Legend bool `help:"Show the colour legend." default:"true" negatable:""`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	home := state.HomeState{}.BeginLoad()

	reqCtx, cancel := ctx.requestContext()
	defer cancel()

	entries, err := ctx.API.Summary(reqCtx)
	if err != nil {
		home = home.SummaryFailed(err)
		return home.Err
	}
	home = home.SummaryLoaded(entries)
	logger.Debug("Summary loaded", "days", len(home.Summary))

	now := ctx.Now()
	grid := home.Grid(now)

	header := make([]string, 0, constants.DaysPerWeek)
	for _, initial := range constants.WeekDayInitials {
		header = append(header, headerStyle.Render(initial))
	}
	ctx.println(strings.Join(header, " "))

	for _, week := range grid.Weeks() {
		row := make([]string, 0, len(week))
		for _, slot := range week {
			row = append(row, renderSlot(slot))
		}
		ctx.println(strings.Join(row, " "))
	}

	today := grid.Cells[len(grid.Cells)-1]
	ctx.println()
	ctx.printf("Hoje: %s %d%% (%d/%d)\n", barStyle.Render(progressBar(today.Progress)), today.Progress, today.Completed, today.Amount)

	if c.Legend {
		ctx.println(mutedStyle.Render("0%") + " " + legend() + " " + mutedStyle.Render("100%"))
	}
	return nil
}

func renderSlot(slot state.Slot) string {
	switch slot.Kind {
	case state.SlotDay:
		glyph := levelStyles[slot.Cell.Level].Render(cellDay)
		if slot.Cell.Today {
			glyph = todayStyle.Render(glyph)
		}
		return glyph
	case state.SlotFiller:
		return mutedStyle.Render(cellFiller)
	default:
		return cellBlank
	}
}

func legend() string {
	parts := make([]string, 0, len(levelStyles))
	for l := progress.LevelNone; l <= progress.LevelComplete; l++ {
		parts = append(parts, levelStyles[l].Render(cellDay))
	}
	return strings.Join(parts, " ")
}

func progressBar(pct int) string {
	return progress.Bar(pct, barWidth)
}
