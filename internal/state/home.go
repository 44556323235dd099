// Package state holds the per-screen client state as immutable values. Every
// transition returns a new value and leaves the receiver untouched, so fetch
// and toggle flows can be tested without a UI.
package state

import (
	"slices"
	"time"

	"github.com/julianstephens/habitual/internal/calendar"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/progress"
)

// HomeState is the summary screen: a loading flag and the fetched summary.
type HomeState struct {
	Loading bool
	Summary []models.DaySummaryEntry // nil until the first successful load
	Err     error
}

func (s HomeState) BeginLoad() HomeState {
	return HomeState{Loading: true, Summary: s.Summary}
}

func (s HomeState) SummaryLoaded(entries []models.DaySummaryEntry) HomeState {
	if entries == nil {
		entries = []models.DaySummaryEntry{}
	}
	return HomeState{Summary: slices.Clone(entries)}
}

// SummaryFailed keeps whatever summary was already shown.
func (s HomeState) SummaryFailed(err error) HomeState {
	return HomeState{Summary: s.Summary, Err: err}
}

// Loaded reports whether a summary is available to draw.
func (s HomeState) Loaded() bool {
	return s.Summary != nil
}

// Cell is one day of the summary grid.
type Cell struct {
	Date      time.Time
	HasEntry  bool
	Amount    int
	Completed int
	Progress  int
	Level     progress.Level
	Today     bool
}

// Grid is the year-to-date summary layout: blank cells to align January 1
// under its weekday, one cell per day, then placeholder cells up to the
// minimum grid size.
type Grid struct {
	LeadingBlanks int
	Cells         []Cell
	Filler        int
}

// Grid lays out the summary for the year containing now.
func (s HomeState) Grid(now time.Time) Grid {
	loc := now.Location()

	byDay := make(map[string]models.DaySummaryEntry, len(s.Summary))
	for _, e := range s.Summary {
		byDay[calendar.DayKey(e.Date, loc)] = e
	}

	g := Grid{Cells: make([]Cell, 0, now.YearDay())}
	for date := range calendar.FromYearStart(now) {
		if len(g.Cells) == 0 {
			g.LeadingBlanks = calendar.LeadingBlanks(date)
		}

		cell := Cell{Date: date, Today: calendar.SameDay(date, now, loc)}
		if e, ok := byDay[calendar.DayKey(date, loc)]; ok {
			cell.HasEntry = true
			cell.Amount = e.Amount
			cell.Completed = e.Completed
			cell.Progress = e.Progress()
		}
		cell.Level = progress.LevelOf(cell.Progress)
		g.Cells = append(g.Cells, cell)
	}
	g.Filler = calendar.FillerCount(len(g.Cells))

	return g
}

// SlotKind tells a grid slot apart: alignment blank, day, or placeholder.
type SlotKind int

const (
	SlotBlank SlotKind = iota
	SlotDay
	SlotFiller
)

// Slot is one position of the grid. Cell is set only for SlotDay.
type Slot struct {
	Kind SlotKind
	Cell *Cell
}

// Weeks splits the grid into rows of seven slots, Sunday first.
func (g Grid) Weeks() [][]Slot {
	slots := make([]Slot, 0, g.LeadingBlanks+len(g.Cells)+g.Filler)
	for i := 0; i < g.LeadingBlanks; i++ {
		slots = append(slots, Slot{Kind: SlotBlank})
	}
	for i := range g.Cells {
		slots = append(slots, Slot{Kind: SlotDay, Cell: &g.Cells[i]})
	}
	for i := 0; i < g.Filler; i++ {
		slots = append(slots, Slot{Kind: SlotFiller})
	}

	var weeks [][]Slot
	for start := 0; start < len(slots); start += 7 {
		weeks = append(weeks, slots[start:min(start+7, len(slots))])
	}
	return weeks
}
