package interfaces

import (
	"context"

	"github.com/ternarybob/orbit/internal/models"
)

// SignalStorage persists the signal collection as a single snapshot record.
// The snapshot is overwritten after every mutation and read once at startup;
// a missing snapshot surfaces as ErrSnapshotNotFound.
type SignalStorage interface {
	SaveSnapshot(ctx context.Context, signals []models.Signal) error
	LoadSnapshot(ctx context.Context) ([]models.Signal, error)
}

// ConversationStorage persists the conversation collection as a snapshot.
type ConversationStorage interface {
	SaveSnapshot(ctx context.Context, conversations []models.Conversation) error
	LoadSnapshot(ctx context.Context) ([]models.Conversation, error)
}

// IdeaStorage persists the trade-idea collection as a snapshot.
type IdeaStorage interface {
	SaveSnapshot(ctx context.Context, ideas []models.TradeIdea) error
	LoadSnapshot(ctx context.Context) ([]models.TradeIdea, error)
}

// SessionStorage persists the current user session.
type SessionStorage interface {
	SaveSession(ctx context.Context, user *models.User) error
	LoadSession(ctx context.Context) (*models.User, error)
	ClearSession(ctx context.Context) error
}

// StorageManager bundles the four independently keyed storages behind one
// connection lifecycle.
type StorageManager interface {
	SignalStorage() SignalStorage
	ConversationStorage() ConversationStorage
	IdeaStorage() IdeaStorage
	SessionStorage() SessionStorage
	Close() error
}
