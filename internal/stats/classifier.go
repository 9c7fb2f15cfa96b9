// Package stats derives view state from the current signal collection:
// live/past classification, calendar-day history grouping, and trailing-window
// performance figures. Every function here is pure and recomputed per query;
// nothing is cached because window boundaries move with the clock.
package stats

import (
	"github.com/ternarybob/orbit/internal/models"
)

// Classification partitions a signal collection by lifecycle state. Active
// and Past are disjoint and together contain every input signal, each in its
// original insertion order.
type Classification struct {
	Active []models.Signal
	Past   []models.Signal
}

// Classify splits signals into active (status ACTIVE) and past (resolved)
// subsets, preserving input order in both.
func Classify(signals []models.Signal) Classification {
	c := Classification{
		Active: make([]models.Signal, 0, len(signals)),
		Past:   make([]models.Signal, 0, len(signals)),
	}
	for _, s := range signals {
		if s.Status == models.StatusActive {
			c.Active = append(c.Active, s)
		} else {
			c.Past = append(c.Past, s)
		}
	}
	return c
}
