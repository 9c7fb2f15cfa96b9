package stats

import (
	"testing"
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

func mkSignal(id string, status models.SignalStatus, createdAt time.Time) models.Signal {
	return models.Signal{
		ID:          id,
		Asset:       "XAUUSD",
		Direction:   models.DirectionLong,
		EntryPrice:  2310,
		StopLoss:    2300,
		TakeProfit1: 2330,
		TakeProfit2: 2350,
		CreatedAt:   createdAt,
		Status:      status,
	}
}

func TestClassifyPartitionsByStatus(t *testing.T) {
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	signals := []models.Signal{
		mkSignal("s1", models.StatusActive, base),
		mkSignal("s2", models.StatusHitTP, base.Add(time.Hour)),
		mkSignal("s3", models.StatusActive, base.Add(2*time.Hour)),
		mkSignal("s4", models.StatusHitSL, base.Add(3*time.Hour)),
		mkSignal("s5", models.StatusBreakEven, base.Add(4*time.Hour)),
		mkSignal("s6", models.StatusClosed, base.Add(5*time.Hour)),
	}

	c := Classify(signals)

	if len(c.Active) != 2 {
		t.Fatalf("expected 2 active signals, got %d", len(c.Active))
	}
	if len(c.Past) != 4 {
		t.Fatalf("expected 4 past signals, got %d", len(c.Past))
	}
	if len(c.Active)+len(c.Past) != len(signals) {
		t.Errorf("partition lost signals: %d + %d != %d", len(c.Active), len(c.Past), len(signals))
	}
	for _, s := range c.Active {
		if s.Status != models.StatusActive {
			t.Errorf("active partition contains %s with status %s", s.ID, s.Status)
		}
	}
	for _, s := range c.Past {
		if s.Status == models.StatusActive {
			t.Errorf("past partition contains active signal %s", s.ID)
		}
	}
}

func TestClassifyPreservesInsertionOrder(t *testing.T) {
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	signals := []models.Signal{
		mkSignal("a", models.StatusActive, base.Add(2*time.Hour)),
		mkSignal("b", models.StatusHitTP, base),
		mkSignal("c", models.StatusActive, base.Add(time.Hour)),
		mkSignal("d", models.StatusClosed, base.Add(3*time.Hour)),
	}

	c := Classify(signals)

	if c.Active[0].ID != "a" || c.Active[1].ID != "c" {
		t.Errorf("active order changed: got %s, %s", c.Active[0].ID, c.Active[1].ID)
	}
	if c.Past[0].ID != "b" || c.Past[1].ID != "d" {
		t.Errorf("past order changed: got %s, %s", c.Past[0].ID, c.Past[1].ID)
	}
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil)
	if len(c.Active) != 0 || len(c.Past) != 0 {
		t.Errorf("expected empty partitions, got %d active, %d past", len(c.Active), len(c.Past))
	}
}
