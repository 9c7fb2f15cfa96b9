package badger

import (
	"time"

	"github.com/ternarybob/orbit/internal/models"
)

// Fixed snapshot keys. Each collection is persisted as one serialized record
// under its key; absence of the key means "use defaults/generated seed".
const (
	keySignals       = "signals"
	keyConversations = "conversations"
	keyTradeIdeas    = "trade_ideas"
	keySession       = "session"
)

// signalSnapshot wraps the full signal collection for storage under keySignals.
type signalSnapshot struct {
	Key       string
	Signals   []models.Signal
	UpdatedAt time.Time
}

// conversationSnapshot wraps the conversation collection.
type conversationSnapshot struct {
	Key           string
	Conversations []models.Conversation
	UpdatedAt     time.Time
}

// ideaSnapshot wraps the trade-idea collection.
type ideaSnapshot struct {
	Key       string
	Ideas     []models.TradeIdea
	UpdatedAt time.Time
}

// sessionSnapshot wraps the current user session.
type sessionSnapshot struct {
	Key       string
	User      models.User
	UpdatedAt time.Time
}
