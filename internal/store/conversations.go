package store

import (
	"context"
	"fmt"

	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

// AppendMessage appends a message to a conversation log, refreshes the
// denormalized last-message summary, and bumps the unread counter when the
// message came from the counterpart side.
func (s *Store) AppendMessage(ctx context.Context, conversationID, senderName string, senderIsLocal bool, text string, image *models.Image) (*models.ChatMessage, error) {
	conv := s.findConversation(conversationID)
	if conv == nil {
		return nil, interfaces.ErrNotFound
	}

	avatarTag := "blue"
	if senderIsLocal {
		avatarTag = "accent"
	}
	message := models.ChatMessage{
		ID:              common.NewMessageID(),
		SenderName:      senderName,
		Text:            text,
		Image:           image,
		SentAt:          s.now(),
		IsFromLocalUser: senderIsLocal,
		AvatarColorTag:  avatarTag,
	}

	conv.Messages = append(conv.Messages, message)
	conv.LastMessageText = message.Text
	conv.LastMessageAt = message.SentAt
	if !senderIsLocal {
		conv.UnreadCount++
	}

	if err := s.storage.ConversationStorage().SaveSnapshot(ctx, s.conversations); err != nil {
		return &message, fmt.Errorf("message appended but not persisted: %w", err)
	}
	return &message, nil
}

// MarkRead zeroes a conversation's unread counter. Marking an already-read
// conversation is a no-op, not an error.
func (s *Store) MarkRead(ctx context.Context, conversationID string) error {
	conv := s.findConversation(conversationID)
	if conv == nil {
		return interfaces.ErrNotFound
	}
	if conv.UnreadCount == 0 {
		return nil
	}
	conv.UnreadCount = 0
	if err := s.storage.ConversationStorage().SaveSnapshot(ctx, s.conversations); err != nil {
		return fmt.Errorf("conversation marked read but not persisted: %w", err)
	}
	return nil
}

// ConversationsFor returns the threads visible to a viewer: a TEACHER sees
// every conversation, a STUDENT sees only the thread keyed to their own id.
func (s *Store) ConversationsFor(role models.Role, viewerID string) []models.Conversation {
	if role == models.RoleTeacher {
		out := make([]models.Conversation, len(s.conversations))
		copy(out, s.conversations)
		return out
	}
	var out []models.Conversation
	for _, c := range s.conversations {
		if c.CounterpartID == viewerID {
			out = append(out, c)
		}
	}
	return out
}

// TotalUnread sums the unread counters across all conversations (the inbox
// badge).
func (s *Store) TotalUnread() int {
	total := 0
	for _, c := range s.conversations {
		total += c.UnreadCount
	}
	return total
}

func (s *Store) findConversation(id string) *models.Conversation {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return &s.conversations[i]
		}
	}
	return nil
}
