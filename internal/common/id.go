package common

import (
	"github.com/google/uuid"
)

// NewSignalID generates a unique signal ID with the "sig_" prefix
func NewSignalID() string {
	return "sig_" + uuid.New().String()
}

// NewIdeaID generates a unique trade-idea ID with the "idea_" prefix
func NewIdeaID() string {
	return "idea_" + uuid.New().String()
}

// NewConversationID generates a unique conversation ID with the "conv_" prefix
func NewConversationID() string {
	return "conv_" + uuid.New().String()
}

// NewMessageID generates a unique chat-message ID with the "msg_" prefix
func NewMessageID() string {
	return "msg_" + uuid.New().String()
}

// NewUserID generates a unique user ID with the "usr_" prefix
func NewUserID() string {
	return "usr_" + uuid.New().String()
}
