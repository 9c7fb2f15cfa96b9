// Package store owns the in-memory entity collections (signals, trade ideas,
// conversations) and mirrors every mutation to durable snapshot storage.
// Execution is single-threaded and event-driven; mutations are atomic with
// respect to that single thread, so the store carries no locking.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

// Store holds the entity collections behind explicit mutation methods. It is
// the only stateful component of the core besides the session.
type Store struct {
	signals       []models.Signal
	conversations []models.Conversation
	ideas         []models.TradeIdea

	storage  interfaces.StorageManager
	validate *validator.Validate
	logger   arbor.ILogger
	now      func() time.Time
}

// New creates an empty Store backed by the given storage manager. Call
// Hydrate before use.
func New(storage interfaces.StorageManager, logger arbor.ILogger) *Store {
	return &Store{
		storage:  storage,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// HydrateDefaults supplies lazily-built seed collections used when a
// persisted snapshot is absent. A nil func leaves the collection empty.
type HydrateDefaults struct {
	Signals       func() []models.Signal
	Conversations func() []models.Conversation
	Ideas         func() []models.TradeIdea
}

// Hydrate loads the three collections from storage. For each snapshot that
// does not exist yet, the matching default builder runs and its output is
// persisted immediately, so the generator only ever runs on first start.
func (s *Store) Hydrate(ctx context.Context, defaults HydrateDefaults) error {
	signals, err := s.storage.SignalStorage().LoadSnapshot(ctx)
	switch {
	case err == nil:
		s.signals = signals
	case err == interfaces.ErrSnapshotNotFound:
		if defaults.Signals != nil {
			s.signals = defaults.Signals()
			if err := s.storage.SignalStorage().SaveSnapshot(ctx, s.signals); err != nil {
				return fmt.Errorf("failed to persist seeded signals: %w", err)
			}
			s.logger.Info().Int("count", len(s.signals)).Msg("Seeded signal history")
		}
	default:
		return fmt.Errorf("failed to hydrate signals: %w", err)
	}

	conversations, err := s.storage.ConversationStorage().LoadSnapshot(ctx)
	switch {
	case err == nil:
		s.conversations = conversations
	case err == interfaces.ErrSnapshotNotFound:
		if defaults.Conversations != nil {
			s.conversations = defaults.Conversations()
			if err := s.storage.ConversationStorage().SaveSnapshot(ctx, s.conversations); err != nil {
				return fmt.Errorf("failed to persist seeded conversations: %w", err)
			}
		}
	default:
		return fmt.Errorf("failed to hydrate conversations: %w", err)
	}

	ideas, err := s.storage.IdeaStorage().LoadSnapshot(ctx)
	switch {
	case err == nil:
		s.ideas = ideas
	case err == interfaces.ErrSnapshotNotFound:
		if defaults.Ideas != nil {
			s.ideas = defaults.Ideas()
			if err := s.storage.IdeaStorage().SaveSnapshot(ctx, s.ideas); err != nil {
				return fmt.Errorf("failed to persist seeded ideas: %w", err)
			}
		}
	default:
		return fmt.Errorf("failed to hydrate ideas: %w", err)
	}

	s.logger.Info().
		Int("signals", len(s.signals)).
		Int("conversations", len(s.conversations)).
		Int("ideas", len(s.ideas)).
		Msg("Store hydrated")
	return nil
}
