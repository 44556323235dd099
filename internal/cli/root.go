package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/models"
)

// HabitsAPI is the remote habits service the commands talk to.
type HabitsAPI interface {
	Summary(ctx context.Context) ([]models.DaySummaryEntry, error)
	Day(ctx context.Context, date time.Time) (models.DayDetail, error)
	CreateHabit(ctx context.Context, habit models.NewHabit) (models.HabitRecord, error)
	ToggleHabit(ctx context.Context, habitID string) error
}

type Context struct {
	API        HabitsAPI
	Config     config.Config
	ConfigPath string
	Location   *time.Location
	Clock      func() time.Time
	Out        io.Writer
}

// Now returns the current time in the configured timezone.
func (c *Context) Now() time.Time {
	now := time.Now()
	if c.Clock != nil {
		now = c.Clock()
	}
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return now
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) requestContext() (context.Context, context.CancelFunc) {
	if c.Config.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Config.Timeout)
	}
	return context.WithCancel(context.Background())
}

// ParseWeekdays parses a comma-separated list of weekdays. English and
// Portuguese names, their three-letter forms and numbers (0=Sunday,
// 6=Saturday) are accepted.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday, "dom": time.Sunday, "domingo": time.Sunday,
		"mon": time.Monday, "monday": time.Monday, "seg": time.Monday, "segunda": time.Monday, "segunda-feira": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday, "ter": time.Tuesday, "terça": time.Tuesday, "terca": time.Tuesday, "terça-feira": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday, "qua": time.Wednesday, "quarta": time.Wednesday, "quarta-feira": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday, "qui": time.Thursday, "quinta": time.Thursday, "quinta-feira": time.Thursday,
		"fri": time.Friday, "friday": time.Friday, "sex": time.Friday, "sexta": time.Friday, "sexta-feira": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday, "sab": time.Saturday, "sáb": time.Saturday, "sábado": time.Saturday, "sabado": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}

	return weekdays, nil
}
