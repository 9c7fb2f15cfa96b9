package seed

import (
	"time"

	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/models"
)

// DefaultConversations returns the first-run inbox: one thread from a sample
// student with an unread question, and the local user's own thread with the
// mentor. localUserID links the second thread to the current session so a
// STUDENT role sees exactly one conversation.
func DefaultConversations(localUserID, localUserName, mentorName string, now time.Time) []models.Conversation {
	studentID := common.NewUserID()

	studentThread := models.Conversation{
		ID:              common.NewConversationID(),
		CounterpartID:   studentID,
		CounterpartName: "Jason (Student)",
		Messages: []models.ChatMessage{
			{
				ID:              common.NewMessageID(),
				SenderName:      "Jason (Student)",
				Text:            "Hi, regarding the XAUUSD short...",
				SentAt:          now.Add(-61 * time.Minute),
				IsFromLocalUser: false,
				AvatarColorTag:  "blue",
			},
			{
				ID:              common.NewMessageID(),
				SenderName:      "Jason (Student)",
				Text:            "Can you explain the SL placement?",
				SentAt:          now.Add(-time.Hour),
				IsFromLocalUser: false,
				AvatarColorTag:  "blue",
			},
		},
		UnreadCount: 1,
	}

	ownThread := models.Conversation{
		ID:              common.NewConversationID(),
		CounterpartID:   localUserID,
		CounterpartName: localUserName,
		Messages: []models.ChatMessage{
			{
				ID:              common.NewMessageID(),
				SenderName:      mentorName,
				Text:            "Welcome to the inner circle.",
				SentAt:          now.Add(-25 * time.Hour),
				IsFromLocalUser: false,
				AvatarColorTag:  "accent",
			},
			{
				ID:              common.NewMessageID(),
				SenderName:      localUserName,
				Text:            "Thanks for the update!",
				SentAt:          now.Add(-24 * time.Hour),
				IsFromLocalUser: true,
				AvatarColorTag:  "gray",
			},
		},
		UnreadCount: 0,
	}

	threads := []models.Conversation{studentThread, ownThread}
	for i := range threads {
		if last := threads[i].LastMessage(); last != nil {
			threads[i].LastMessageText = last.Text
			threads[i].LastMessageAt = last.SentAt
		}
	}
	return threads
}

// DefaultIdeas returns the first-run trade-idea feed.
func DefaultIdeas(mentorName string, now time.Time) []models.TradeIdea {
	return []models.TradeIdea{
		{
			ID:          common.NewIdeaID(),
			Title:       "XAUUSD Weekly Outlook",
			Description: "Gold is currently sitting at a major support level on the weekly timeframe. We are looking for a rejection here to push price back towards 2400.\n\nKey levels to watch: 2300, 2280.",
			AuthorName:  mentorName,
			CreatedAt:   now.Add(-24 * time.Hour),
			LikeCount:   42,
		},
		{
			ID:          common.NewIdeaID(),
			Title:       "DXY Correlation Alert",
			Description: "The US Dollar Index is showing weakness, which usually correlates with strength in Gold. Keep an eye on the DXY open tomorrow.",
			AuthorName:  mentorName,
			CreatedAt:   now.Add(-48 * time.Hour),
			LikeCount:   28,
		},
	}
}
