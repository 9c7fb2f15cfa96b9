package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// SignalStorage implements the SignalStorage interface for Badger
type SignalStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewSignalStorage creates a new SignalStorage instance
func NewSignalStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SignalStorage {
	return &SignalStorage{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot overwrites the persisted signal collection
func (s *SignalStorage) SaveSnapshot(ctx context.Context, signals []models.Signal) error {
	snapshot := signalSnapshot{
		Key:       keySignals,
		Signals:   signals,
		UpdatedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(keySignals, &snapshot); err != nil {
		return fmt.Errorf("failed to save signal snapshot: %w", err)
	}
	s.logger.Debug().Int("count", len(signals)).Msg("Signal snapshot saved")
	return nil
}

// LoadSnapshot reads the persisted signal collection. A missing snapshot
// returns ErrSnapshotNotFound so the caller can seed defaults.
func (s *SignalStorage) LoadSnapshot(ctx context.Context) ([]models.Signal, error) {
	var snapshot signalSnapshot
	err := s.db.Store().Get(keySignals, &snapshot)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load signal snapshot: %w", err)
	}
	return snapshot.Signals, nil
}
