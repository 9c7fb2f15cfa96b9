package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db           *BadgerDB
	signal       interfaces.SignalStorage
	conversation interfaces.ConversationStorage
	idea         interfaces.IdeaStorage
	session      interfaces.SessionStorage
	logger       arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:           db,
		signal:       NewSignalStorage(db, logger),
		conversation: NewConversationStorage(db, logger),
		idea:         NewIdeaStorage(db, logger),
		session:      NewSessionStorage(db, logger),
		logger:       logger,
	}

	logger.Info().Str("path", config.Path).Msg("Badger storage manager initialized")

	return manager, nil
}

// SignalStorage returns the Signal storage interface
func (m *Manager) SignalStorage() interfaces.SignalStorage {
	return m.signal
}

// ConversationStorage returns the Conversation storage interface
func (m *Manager) ConversationStorage() interfaces.ConversationStorage {
	return m.conversation
}

// IdeaStorage returns the Idea storage interface
func (m *Manager) IdeaStorage() interfaces.IdeaStorage {
	return m.idea
}

// SessionStorage returns the Session storage interface
func (m *Manager) SessionStorage() interfaces.SessionStorage {
	return m.session
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
