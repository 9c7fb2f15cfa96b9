package stats

import (
	"sort"
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

// dateKeyFormat renders a calendar day as dd/mm/yyyy for group headers.
const dateKeyFormat = "02/01/2006"

// DayGroup is one calendar day of past signals, newest first.
type DayGroup struct {
	DateKey   string          // e.g. "01/02/2025"
	Signals   []models.Signal // descending by CreatedAt
	Timestamp time.Time       // CreatedAt of the group's most recent signal
}

// GroupByDay buckets past signals by calendar date in loc (nil means the
// system local zone). Groups are ordered newest day first; signals within a
// group are ordered newest first. Signals with equal timestamps keep their
// original relative order.
func GroupByDay(past []models.Signal, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}
	if len(past) == 0 {
		return nil
	}

	sorted := make([]models.Signal, len(past))
	copy(sorted, past)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var groups []DayGroup
	index := make(map[string]int)
	for _, s := range sorted {
		key := s.CreatedAt.In(loc).Format(dateKeyFormat)
		if i, ok := index[key]; ok {
			groups[i].Signals = append(groups[i].Signals, s)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DayGroup{
			DateKey: key,
			Signals: []models.Signal{s},
			// The first member is the group's most recent signal, since the
			// input is already sorted descending.
			Timestamp: s.CreatedAt,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Timestamp.After(groups[j].Timestamp)
	})

	return groups
}
