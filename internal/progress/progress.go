// Package progress turns a day's habit counts into the completion percentage
// and colour band used by progress bars and calendar cells.
package progress

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCounts is returned by Validate for counts outside 0 <= completed <= possible.
var ErrInvalidCounts = errors.New("invalid habit counts")

// Validate checks the Percentage precondition.
func Validate(possible, completed int) error {
	if possible < 0 || completed < 0 {
		return fmt.Errorf("%w: negative count (possible=%d, completed=%d)", ErrInvalidCounts, possible, completed)
	}
	if completed > possible {
		return fmt.Errorf("%w: completed %d exceeds possible %d", ErrInvalidCounts, completed, possible)
	}
	return nil
}

// Percentage returns round(completed/possible*100), rounding half away from
// zero. A day with no possible habits is 0%. Callers should pass counts that
// satisfy Validate; out-of-range results are clamped to [0, 100].
func Percentage(possible, completed int) int {
	if possible <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completed) / float64(possible) * 100))
	return min(max(pct, 0), 100)
}

// Level is the colour band of a calendar cell.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelVeryHigh
	LevelComplete
)

// LevelOf buckets a percentage into a colour band.
func LevelOf(pct int) Level {
	switch {
	case pct <= 0:
		return LevelNone
	case pct < 20:
		return LevelLow
	case pct < 40:
		return LevelMedium
	case pct < 60:
		return LevelHigh
	case pct < 80:
		return LevelVeryHigh
	default:
		return LevelComplete
	}
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very-high"
	case LevelComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Filled is the number of cells a bar of width cells fills at pct.
func Filled(pct, width int) int {
	if width <= 0 {
		return 0
	}
	pct = min(max(pct, 0), 100)
	return int(math.Round(float64(pct) * float64(width) / 100))
}

// Bar renders a fixed-width text progress bar.
func Bar(pct, width int) string {
	filled := Filled(pct, width)
	if width < 0 {
		width = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
