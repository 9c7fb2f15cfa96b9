// Package seed produces first-run data: a randomized two-month signal
// history plus default conversations and trade ideas. It runs only when no
// persisted snapshot exists.
package seed

import (
	"math/rand"
	"time"

	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/models"
)

// Price bounds for the generated XAUUSD history. Stops sit a bounded distance
// from entry and targets are 2-3x the stop distance, so every generated trade
// has a positive risk-reward skew by construction.
const (
	basePriceMin = 2250.0
	basePriceMax = 2450.0
	stopDistMin  = 8.0
	stopDistMax  = 15.0
	targetMulMin = 2.0
	targetMulMax = 3.0
)

var sampleNotes = []string{
	"Breakout from bullish flag pattern on 4H.",
	"Resistance rejection at daily high.",
	"Classic retest of the weekly support zone.",
	"Quick scalp on the M15 timeframe.",
	"News event volatility play around the London open.",
	"Liquidity sweep below Asian session lows.",
}

// Generator produces deterministic-shape, randomized-value seed signals. The
// random source is injected so tests can pin exact outputs.
type Generator struct {
	rng    *rand.Rand
	mentor string
}

// NewGenerator creates a Generator. A zero seed derives one from the clock.
func NewGenerator(randomSeed int64, mentorName string) *Generator {
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(randomSeed)),
		mentor: mentorName,
	}
}

// outcomePlan fixes the per-month category split: roughly two-thirds wins,
// one-fifth losses, remainder breakeven.
type outcomePlan struct {
	wins      int
	losses    int
	breakeven int
}

func planFor(count int) outcomePlan {
	wins := 2 * count / 3
	losses := (count + 2) / 5 // count/5 rounded to nearest
	return outcomePlan{
		wins:      wins,
		losses:    losses,
		breakeven: count - wins - losses,
	}
}

// Signals generates the seed history: currentCount signals dated in the
// current calendar month and previousCount in the previous month.
func (g *Generator) Signals(now time.Time, currentCount, previousCount int) []models.Signal {
	signals := g.month(now, now, planFor(currentCount))
	previousAnchor := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	signals = append(signals, g.month(previousAnchor, now, planFor(previousCount))...)
	return signals
}

// month generates one month of signals anchored at any instant inside the
// target month.
func (g *Generator) month(anchor, now time.Time, plan outcomePlan) []models.Signal {
	statuses := make([]models.SignalStatus, 0, plan.wins+plan.losses+plan.breakeven)
	for i := 0; i < plan.wins; i++ {
		statuses = append(statuses, models.StatusHitTP)
	}
	for i := 0; i < plan.losses; i++ {
		statuses = append(statuses, models.StatusHitSL)
	}
	for i := 0; i < plan.breakeven; i++ {
		statuses = append(statuses, models.StatusBreakEven)
	}

	signals := make([]models.Signal, 0, len(statuses))
	for _, status := range statuses {
		signals = append(signals, g.signal(anchor, now, status))
	}
	return signals
}

func (g *Generator) signal(anchor, now time.Time, status models.SignalStatus) models.Signal {
	direction := models.DirectionLong
	if g.rng.Intn(2) == 1 {
		direction = models.DirectionShort
	}

	entry := basePriceMin + g.rng.Float64()*(basePriceMax-basePriceMin)
	stopDist := stopDistMin + g.rng.Float64()*(stopDistMax-stopDistMin)
	targetDist := stopDist * (targetMulMin + g.rng.Float64()*(targetMulMax-targetMulMin))

	var stop, tp1, tp2 float64
	if direction == models.DirectionLong {
		stop = entry - stopDist
		tp1 = entry + targetDist
		tp2 = entry + targetDist + stopDist
	} else {
		stop = entry + stopDist
		tp1 = entry - targetDist
		tp2 = entry - targetDist - stopDist
	}

	return models.Signal{
		ID:          common.NewSignalID(),
		Asset:       "XAUUSD",
		Direction:   direction,
		EntryPrice:  round2(entry),
		StopLoss:    round2(stop),
		TakeProfit1: round2(tp1),
		TakeProfit2: round2(tp2),
		CreatedAt:   g.instantIn(anchor, now),
		Status:      status,
		Notes:       sampleNotes[g.rng.Intn(len(sampleNotes))],
		AuthorName:  g.mentor,
	}
}

// instantIn picks a random day and time within anchor's calendar month.
// Instants that would land in the future are clamped to a recent-past
// fallback taken from the generation clock.
func (g *Generator) instantIn(anchor, now time.Time) time.Time {
	lastDay := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, anchor.Location()).Day()
	day := 1 + g.rng.Intn(lastDay)
	hour := 7 + g.rng.Intn(13)
	minute := g.rng.Intn(60)

	ts := time.Date(anchor.Year(), anchor.Month(), day, hour, minute, 0, 0, anchor.Location())
	if ts.After(now) {
		ts = now.Add(-time.Duration(1+g.rng.Intn(48)) * time.Hour)
	}
	return ts
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
