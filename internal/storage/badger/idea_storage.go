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

// IdeaStorage implements the IdeaStorage interface for Badger
type IdeaStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewIdeaStorage creates a new IdeaStorage instance
func NewIdeaStorage(db *BadgerDB, logger arbor.ILogger) interfaces.IdeaStorage {
	return &IdeaStorage{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot overwrites the persisted trade-idea collection
func (s *IdeaStorage) SaveSnapshot(ctx context.Context, ideas []models.TradeIdea) error {
	snapshot := ideaSnapshot{
		Key:       keyTradeIdeas,
		Ideas:     ideas,
		UpdatedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(keyTradeIdeas, &snapshot); err != nil {
		return fmt.Errorf("failed to save trade-idea snapshot: %w", err)
	}
	s.logger.Debug().Int("count", len(ideas)).Msg("Trade-idea snapshot saved")
	return nil
}

// LoadSnapshot reads the persisted trade-idea collection
func (s *IdeaStorage) LoadSnapshot(ctx context.Context) ([]models.TradeIdea, error) {
	var snapshot ideaSnapshot
	err := s.db.Store().Get(keyTradeIdeas, &snapshot)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trade-idea snapshot: %w", err)
	}
	return snapshot.Ideas, nil
}
