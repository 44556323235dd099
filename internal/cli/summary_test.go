package cli

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/models"
)

func TestSummaryCmd(t *testing.T) {
	api := &fakeAPI{
		summary: []models.DaySummaryEntry{
			{ID: "d1", Date: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), Amount: 2, Completed: 1},
			{ID: "d2", Date: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), Amount: 3, Completed: 3},
		},
	}
	ctx, out := newTestContext(api)

	cmd := &SummaryCmd{Legend: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "D S T Q Q S S") {
		t.Errorf("output missing weekday header:\n%s", got)
	}
	if !strings.Contains(got, "50% (1/2)") {
		t.Errorf("output missing today's progress:\n%s", got)
	}
	if !strings.Contains(got, "0%") || !strings.Contains(got, "100%") {
		t.Errorf("output missing legend:\n%s", got)
	}
}

func TestSummaryCmdWithoutTodayEntry(t *testing.T) {
	ctx, out := newTestContext(&fakeAPI{})

	cmd := &SummaryCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "0% (0/0)") {
		t.Errorf("output = %q, want zero progress for today", out.String())
	}
}

func TestSummaryCmdRemoteFailure(t *testing.T) {
	api := &fakeAPI{
		summaryErr: errors.Remote(errors.OpLoadSummary, 503, fmt.Errorf("unavailable")),
	}
	ctx, out := newTestContext(api)

	cmd := &SummaryCmd{Legend: true}
	err := cmd.Run(ctx)
	if !stderrors.Is(err, errors.ErrRemoteCall) {
		t.Fatalf("Run() error = %v, want ErrRemoteCall", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", out.String())
	}
}
