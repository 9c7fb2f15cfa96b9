package stats

import (
	"testing"
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

func TestGroupByDayBucketsAndOrders(t *testing.T) {
	loc := time.UTC
	past := []models.Signal{
		mkSignal("morning", models.StatusHitTP, time.Date(2025, 2, 1, 9, 0, 0, 0, loc)),
		mkSignal("afternoon", models.StatusHitSL, time.Date(2025, 2, 1, 14, 0, 0, 0, loc)),
		mkSignal("older", models.StatusBreakEven, time.Date(2025, 1, 30, 10, 0, 0, 0, loc)),
	}

	groups := GroupByDay(past, loc)

	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].DateKey != "01/02/2025" {
		t.Errorf("expected newest group 01/02/2025, got %s", groups[0].DateKey)
	}
	if groups[1].DateKey != "30/01/2025" {
		t.Errorf("expected older group 30/01/2025, got %s", groups[1].DateKey)
	}

	// Within the 1 Feb group the 14:00 signal comes before the 09:00 one.
	feb := groups[0]
	if len(feb.Signals) != 2 {
		t.Fatalf("expected 2 signals on 01/02/2025, got %d", len(feb.Signals))
	}
	if feb.Signals[0].ID != "afternoon" || feb.Signals[1].ID != "morning" {
		t.Errorf("signals within group not newest first: got %s, %s", feb.Signals[0].ID, feb.Signals[1].ID)
	}
	if !feb.Timestamp.Equal(feb.Signals[0].CreatedAt) {
		t.Errorf("group timestamp should match its newest signal")
	}
}

func TestGroupByDayRespectsLocation(t *testing.T) {
	// 23:30 UTC on 1 Feb is already 2 Feb in UTC+2.
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	past := []models.Signal{
		mkSignal("late", models.StatusHitTP, time.Date(2025, 2, 1, 23, 30, 0, 0, time.UTC)),
	}

	groups := GroupByDay(past, plus2)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].DateKey != "02/02/2025" {
		t.Errorf("expected date key 02/02/2025 in UTC+2, got %s", groups[0].DateKey)
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	if groups := GroupByDay(nil, time.UTC); groups != nil {
		t.Errorf("expected nil for empty input, got %d groups", len(groups))
	}
}

func TestGroupByDayDoesNotMutateInput(t *testing.T) {
	loc := time.UTC
	past := []models.Signal{
		mkSignal("first", models.StatusHitTP, time.Date(2025, 2, 1, 9, 0, 0, 0, loc)),
		mkSignal("second", models.StatusHitSL, time.Date(2025, 2, 3, 9, 0, 0, 0, loc)),
	}

	GroupByDay(past, loc)

	if past[0].ID != "first" || past[1].ID != "second" {
		t.Errorf("input slice was reordered")
	}
}
