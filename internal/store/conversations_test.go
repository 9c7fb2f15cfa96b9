package store

import (
	"context"
	"testing"
	"time"

	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
	"github.com/ternarybob/orbit/internal/seed"
)

func hydrateConversations(t *testing.T, s *Store) []models.Conversation {
	t.Helper()

	now := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
	if err := s.Hydrate(context.Background(), HydrateDefaults{
		Conversations: func() []models.Conversation {
			return seed.DefaultConversations("usr_student", "New Student", "Alex (Mentor)", now)
		},
	}); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	return s.ConversationsFor(models.RoleTeacher, "")
}

func TestAppendMessageFromCounterpartBumpsUnread(t *testing.T) {
	s := newTestStore(t)
	threads := hydrateConversations(t, s)
	ctx := context.Background()

	studentThread := threads[0]
	before := studentThread.UnreadCount

	msg, err := s.AppendMessage(ctx, studentThread.ID, "Jason (Student)", false, "Also, what about TP2?", nil)
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if msg.IsFromLocalUser {
		t.Errorf("message should be from the counterpart side")
	}

	updated := s.ConversationsFor(models.RoleTeacher, "")[0]
	if updated.UnreadCount != before+1 {
		t.Errorf("unread = %d, want %d", updated.UnreadCount, before+1)
	}
	if updated.LastMessageText != "Also, what about TP2?" {
		t.Errorf("last-message preview not refreshed: %q", updated.LastMessageText)
	}
	if !updated.LastMessageAt.Equal(msg.SentAt) {
		t.Errorf("LastMessageAt not refreshed")
	}
}

func TestAppendMessageFromLocalUserLeavesUnread(t *testing.T) {
	s := newTestStore(t)
	threads := hydrateConversations(t, s)
	ctx := context.Background()

	studentThread := threads[0]
	before := studentThread.UnreadCount

	if _, err := s.AppendMessage(ctx, studentThread.ID, "Alex (Mentor)", true, "SL sits under the sweep low.", nil); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	updated := s.ConversationsFor(models.RoleTeacher, "")[0]
	if updated.UnreadCount != before {
		t.Errorf("own message changed unread: %d, want %d", updated.UnreadCount, before)
	}
}

func TestAppendMessageUnknownConversation(t *testing.T) {
	s := newTestStore(t)
	hydrateConversations(t, s)

	if _, err := s.AppendMessage(context.Background(), "conv_missing", "x", true, "hi", nil); err != interfaces.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkRead(t *testing.T) {
	s := newTestStore(t)
	threads := hydrateConversations(t, s)
	ctx := context.Background()

	studentThread := threads[0]
	if studentThread.UnreadCount == 0 {
		t.Fatalf("seed thread should start unread")
	}

	if err := s.MarkRead(ctx, studentThread.ID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if got := s.ConversationsFor(models.RoleTeacher, "")[0].UnreadCount; got != 0 {
		t.Errorf("unread = %d after MarkRead, want 0", got)
	}

	// Idempotent.
	if err := s.MarkRead(ctx, studentThread.ID); err != nil {
		t.Errorf("second MarkRead should be a no-op, got %v", err)
	}
	if err := s.MarkRead(ctx, "conv_missing"); err != interfaces.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationsForRoles(t *testing.T) {
	s := newTestStore(t)
	hydrateConversations(t, s)

	all := s.ConversationsFor(models.RoleTeacher, "usr_anything")
	if len(all) != 2 {
		t.Errorf("teacher should see every thread, got %d", len(all))
	}

	mine := s.ConversationsFor(models.RoleStudent, "usr_student")
	if len(mine) != 1 {
		t.Fatalf("student should see exactly their own thread, got %d", len(mine))
	}
	if mine[0].CounterpartID != "usr_student" {
		t.Errorf("student sees someone else's thread: %s", mine[0].CounterpartID)
	}

	if stranger := s.ConversationsFor(models.RoleStudent, "usr_other"); len(stranger) != 0 {
		t.Errorf("unknown student should see no threads, got %d", len(stranger))
	}
}

func TestTotalUnread(t *testing.T) {
	s := newTestStore(t)
	threads := hydrateConversations(t, s)
	ctx := context.Background()

	if got := s.TotalUnread(); got != 1 {
		t.Fatalf("seed unread total = %d, want 1", got)
	}

	if _, err := s.AppendMessage(ctx, threads[1].ID, "Alex (Mentor)", false, "New analysis up.", nil); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if got := s.TotalUnread(); got != 2 {
		t.Errorf("unread total = %d, want 2", got)
	}

	if err := s.MarkRead(ctx, threads[0].ID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if got := s.TotalUnread(); got != 1 {
		t.Errorf("unread total after MarkRead = %d, want 1", got)
	}
}
