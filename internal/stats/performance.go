package stats

import (
	"math"
	"sort"
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

// pipsPerPricePoint is the declared XAUUSD approximation: a $1.00 move counts
// as 10 pips. Pip figures here are estimates from entry vs TP/SL levels, not
// real market fills.
const pipsPerPricePoint = 10

// Period identifies a trailing reporting window.
type Period string

const (
	PeriodWeek  Period = "WEEK"
	PeriodMonth Period = "MONTH"
)

// Totals holds outcome counts and the net pip estimate over a signal set.
type Totals struct {
	TradeCount int
	Wins       int
	Losses     int
	Breakeven  int
	WinRate    int // 0-100, 0 when TradeCount is 0
	NetPips    int
}

// WindowStats is Totals for one trailing window plus the matching signals for
// drill-down display, newest first.
type WindowStats struct {
	Period  Period
	Label   string
	Start   time.Time
	Totals  Totals
	Signals []models.Signal
}

// Report is the full performance view: all-time totals plus the configured
// trailing windows (current week, current month).
type Report struct {
	AllTime Totals
	Windows []WindowStats
}

// PipEstimate converts a resolved signal into its signed pip figure.
// HIT_TP pays the distance to the first take-profit, HIT_SL costs the
// distance to the stop. BREAK_EVEN is zero, and so is CLOSED: a manual close
// records no exit price, so no profit is inferred.
func PipEstimate(s models.Signal) int {
	switch s.Status {
	case models.StatusHitTP:
		return int(math.Round(pipsPerPricePoint * math.Abs(s.TakeProfit1-s.EntryPrice)))
	case models.StatusHitSL:
		return -int(math.Round(pipsPerPricePoint * math.Abs(s.EntryPrice-s.StopLoss)))
	default:
		return 0
	}
}

// WeekStart returns the most recent Monday 00:00:00 in now's location.
func WeekStart(now time.Time) time.Time {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	day := now.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// MonthStart returns day 1 00:00:00 of now's month in now's location.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Aggregate computes all-time totals and per-window performance over the full
// signal collection as of now. Only resolved signals count; active ones are
// ignored entirely.
func Aggregate(signals []models.Signal, now time.Time) Report {
	windows := []WindowStats{
		{Period: PeriodWeek, Label: "This Week", Start: WeekStart(now)},
		{Period: PeriodMonth, Label: "This Month", Start: MonthStart(now)},
	}

	var allTime Totals
	for _, s := range signals {
		if !s.Status.IsResolved() {
			continue
		}
		pips := PipEstimate(s)
		tally(&allTime, s, pips)

		for i := range windows {
			if s.CreatedAt.Before(windows[i].Start) {
				continue
			}
			tally(&windows[i].Totals, s, pips)
			windows[i].Signals = append(windows[i].Signals, s)
		}
	}

	finalize(&allTime)
	for i := range windows {
		finalize(&windows[i].Totals)
		sort.SliceStable(windows[i].Signals, func(a, b int) bool {
			return windows[i].Signals[a].CreatedAt.After(windows[i].Signals[b].CreatedAt)
		})
	}

	return Report{AllTime: allTime, Windows: windows}
}

// tally folds one resolved signal into a running Totals.
func tally(t *Totals, s models.Signal, pips int) {
	t.TradeCount++
	t.NetPips += pips
	switch s.Status {
	case models.StatusHitTP:
		t.Wins++
	case models.StatusHitSL:
		t.Losses++
	default:
		t.Breakeven++
	}
}

// finalize computes the win rate once counting is done.
func finalize(t *Totals) {
	if t.TradeCount > 0 {
		t.WinRate = int(math.Round(100 * float64(t.Wins) / float64(t.TradeCount)))
	}
}
