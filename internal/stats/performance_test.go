package stats

import (
	"testing"
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

func TestPipEstimate(t *testing.T) {
	tests := []struct {
		name     string
		entry    float64
		stop     float64
		target   float64
		status   models.SignalStatus
		expected int
	}{
		{"tp hit pays target distance", 2310, 2300, 2330, models.StatusHitTP, 200},
		{"sl hit costs stop distance", 2360.50, 2375, 2340, models.StatusHitSL, -145},
		{"break even is flat", 2310, 2300, 2330, models.StatusBreakEven, 0},
		{"manual close records nothing", 2310, 2300, 2330, models.StatusClosed, 0},
		{"active contributes nothing", 2310, 2300, 2330, models.StatusActive, 0},
		{"fractional distance rounds", 2310, 2300, 2310.26, models.StatusHitTP, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.Signal{
				EntryPrice:  tt.entry,
				StopLoss:    tt.stop,
				TakeProfit1: tt.target,
				Status:      tt.status,
			}
			if got := PipEstimate(s); got != tt.expected {
				t.Errorf("PipEstimate() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			"wednesday rolls back to monday",
			time.Date(2025, 2, 5, 15, 30, 0, 0, time.UTC),
			time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday is its own week start",
			time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the previous monday",
			time.Date(2025, 2, 9, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.now); !got.Equal(tt.expected) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2025, 2, 17, 11, 45, 0, 0, time.UTC)
	expected := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthStart(now); !got.Equal(expected) {
		t.Errorf("MonthStart(%v) = %v, want %v", now, got, expected)
	}
}

func TestAggregateEmptyCollection(t *testing.T) {
	report := Aggregate(nil, time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC))

	if report.AllTime.TradeCount != 0 || report.AllTime.WinRate != 0 || report.AllTime.NetPips != 0 {
		t.Errorf("expected zeroed all-time totals, got %+v", report.AllTime)
	}
	if len(report.Windows) != 2 {
		t.Fatalf("expected week and month windows, got %d", len(report.Windows))
	}
	for _, w := range report.Windows {
		if w.Totals.TradeCount != 0 || w.Totals.WinRate != 0 {
			t.Errorf("window %s should be zeroed, got %+v", w.Label, w.Totals)
		}
	}
}

func TestAggregateWindowMembership(t *testing.T) {
	// Wednesday 5 Feb 2025. Week starts Monday 3 Feb, month starts 1 Feb.
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	signals := []models.Signal{
		// This week and this month: +200 pips.
		mkSignal("week-win", models.StatusHitTP, time.Date(2025, 2, 4, 9, 0, 0, 0, time.UTC)),
		// This month only (before Monday): -100 pips.
		{
			ID: "month-loss", Asset: "XAUUSD", Direction: models.DirectionShort,
			EntryPrice: 2310, StopLoss: 2320, TakeProfit1: 2290,
			CreatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
			Status:    models.StatusHitSL,
		},
		// Previous month: all-time only.
		mkSignal("old-win", models.StatusHitTP, time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)),
		// Active signals never count anywhere.
		mkSignal("live", models.StatusActive, time.Date(2025, 2, 5, 8, 0, 0, 0, time.UTC)),
	}

	report := Aggregate(signals, now)

	if report.AllTime.TradeCount != 3 {
		t.Fatalf("all-time trade count = %d, want 3", report.AllTime.TradeCount)
	}
	if report.AllTime.Wins != 2 || report.AllTime.Losses != 1 {
		t.Errorf("all-time wins/losses = %d/%d, want 2/1", report.AllTime.Wins, report.AllTime.Losses)
	}
	if report.AllTime.NetPips != 300 {
		t.Errorf("all-time net pips = %d, want 300", report.AllTime.NetPips)
	}
	if report.AllTime.WinRate != 67 {
		t.Errorf("all-time win rate = %d, want 67", report.AllTime.WinRate)
	}

	week := report.Windows[0]
	if week.Period != PeriodWeek {
		t.Fatalf("first window should be the week, got %s", week.Period)
	}
	if week.Totals.TradeCount != 1 || week.Totals.NetPips != 200 {
		t.Errorf("week totals = %+v, want 1 trade, 200 pips", week.Totals)
	}

	month := report.Windows[1]
	if month.Totals.TradeCount != 2 || month.Totals.NetPips != 100 {
		t.Errorf("month totals = %+v, want 2 trades, 100 pips", month.Totals)
	}
	if month.Totals.WinRate != 50 {
		t.Errorf("month win rate = %d, want 50", month.Totals.WinRate)
	}
	if len(month.Signals) != 2 || month.Signals[0].ID != "week-win" {
		t.Errorf("month window signals should be newest first")
	}
}

func TestAggregateCountsAddUp(t *testing.T) {
	now := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)
	signals := []models.Signal{
		mkSignal("w1", models.StatusHitTP, now.Add(-time.Hour)),
		mkSignal("l1", models.StatusHitSL, now.Add(-2*time.Hour)),
		mkSignal("b1", models.StatusBreakEven, now.Add(-3*time.Hour)),
		mkSignal("c1", models.StatusClosed, now.Add(-4*time.Hour)),
	}

	report := Aggregate(signals, now)

	got := report.AllTime
	if got.Wins+got.Losses+got.Breakeven != got.TradeCount {
		t.Errorf("wins %d + losses %d + breakeven %d != trades %d", got.Wins, got.Losses, got.Breakeven, got.TradeCount)
	}
	// CLOSED folds into the breakeven bucket.
	if got.Breakeven != 2 {
		t.Errorf("breakeven = %d, want 2 (BREAK_EVEN and CLOSED)", got.Breakeven)
	}
}
