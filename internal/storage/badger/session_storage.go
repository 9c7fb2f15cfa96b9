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

// SessionStorage implements the SessionStorage interface for Badger
type SessionStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewSessionStorage creates a new SessionStorage instance
func NewSessionStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SessionStorage {
	return &SessionStorage{
		db:     db,
		logger: logger,
	}
}

// SaveSession persists the current user session
func (s *SessionStorage) SaveSession(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("user ID is required")
	}
	snapshot := sessionSnapshot{
		Key:       keySession,
		User:      *user,
		UpdatedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(keySession, &snapshot); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("Session saved")
	return nil
}

// LoadSession reads the persisted user session
func (s *SessionStorage) LoadSession(ctx context.Context) (*models.User, error) {
	var snapshot sessionSnapshot
	err := s.db.Store().Get(keySession, &snapshot)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &snapshot.User, nil
}

// ClearSession removes the persisted session. Clearing an absent session is
// not an error.
func (s *SessionStorage) ClearSession(ctx context.Context) error {
	err := s.db.Store().Delete(keySession, &sessionSnapshot{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
