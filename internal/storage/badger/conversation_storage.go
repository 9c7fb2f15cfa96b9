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

// ConversationStorage implements the ConversationStorage interface for Badger
type ConversationStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewConversationStorage creates a new ConversationStorage instance
func NewConversationStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ConversationStorage {
	return &ConversationStorage{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot overwrites the persisted conversation collection
func (s *ConversationStorage) SaveSnapshot(ctx context.Context, conversations []models.Conversation) error {
	snapshot := conversationSnapshot{
		Key:           keyConversations,
		Conversations: conversations,
		UpdatedAt:     time.Now(),
	}
	if err := s.db.Store().Upsert(keyConversations, &snapshot); err != nil {
		return fmt.Errorf("failed to save conversation snapshot: %w", err)
	}
	s.logger.Debug().Int("count", len(conversations)).Msg("Conversation snapshot saved")
	return nil
}

// LoadSnapshot reads the persisted conversation collection
func (s *ConversationStorage) LoadSnapshot(ctx context.Context) ([]models.Conversation, error) {
	var snapshot conversationSnapshot
	err := s.db.Store().Get(keyConversations, &snapshot)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation snapshot: %w", err)
	}
	return snapshot.Conversations, nil
}
