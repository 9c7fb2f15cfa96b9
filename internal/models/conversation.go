package models

import "time"

// ChatMessage is a single entry in a conversation log. Message logs are
// append-only.
type ChatMessage struct {
	ID              string    `json:"id"`
	SenderName      string    `json:"sender_name"`
	Text            string    `json:"text"`
	Image           *Image    `json:"image,omitempty"`
	SentAt          time.Time `json:"sent_at"`
	IsFromLocalUser bool      `json:"is_from_local_user"`
	AvatarColorTag  string    `json:"avatar_color_tag"`
}

// Conversation is a private mentor/student thread. LastMessageText and
// LastMessageAt always mirror the final element of Messages; UnreadCount is
// the number of counterpart messages appended since the last mark-read.
type Conversation struct {
	ID              string        `json:"id"`
	CounterpartID   string        `json:"counterpart_id"`
	CounterpartName string        `json:"counterpart_name"`
	Messages        []ChatMessage `json:"messages"`
	LastMessageText string        `json:"last_message_text"`
	LastMessageAt   time.Time     `json:"last_message_at"`
	UnreadCount     int           `json:"unread_count"`
}

// LastMessage returns the final message of the log, or nil when empty.
func (c *Conversation) LastMessage() *ChatMessage {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
