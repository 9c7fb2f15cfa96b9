package store

import (
	"context"
	"fmt"

	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

// Ideas returns a copy of the current trade-idea collection.
func (s *Store) Ideas() []models.TradeIdea {
	out := make([]models.TradeIdea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

// PostIdea validates the draft and publishes a new trade idea at the head of
// the feed. Only a TEACHER may post.
func (s *Store) PostIdea(ctx context.Context, actor *models.User, draft models.IdeaDraft) (*models.TradeIdea, error) {
	if !actor.IsTeacher() {
		return nil, interfaces.ErrNotAuthorized
	}
	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid idea draft: %w", err)
	}

	idea := models.TradeIdea{
		ID:          common.NewIdeaID(),
		Title:       draft.Title,
		Description: draft.Description,
		Image:       draft.Image,
		AuthorName:  actor.DisplayName,
		CreatedAt:   s.now(),
		LikeCount:   0,
	}

	s.ideas = append([]models.TradeIdea{idea}, s.ideas...)
	if err := s.storage.IdeaStorage().SaveSnapshot(ctx, s.ideas); err != nil {
		return &idea, fmt.Errorf("idea posted but not persisted: %w", err)
	}

	s.logger.Info().Str("idea_id", idea.ID).Str("title", idea.Title).Msg("Trade idea posted")
	return &idea, nil
}

// LikeIdea increments an idea's like counter.
func (s *Store) LikeIdea(ctx context.Context, id string) (int, error) {
	for i := range s.ideas {
		if s.ideas[i].ID != id {
			continue
		}
		s.ideas[i].LikeCount++
		if err := s.storage.IdeaStorage().SaveSnapshot(ctx, s.ideas); err != nil {
			return s.ideas[i].LikeCount, fmt.Errorf("like recorded but not persisted: %w", err)
		}
		return s.ideas[i].LikeCount, nil
	}
	return 0, interfaces.ErrNotFound
}

// DeleteIdea removes a trade idea from the feed.
func (s *Store) DeleteIdea(ctx context.Context, actor *models.User, id string) error {
	if !actor.IsTeacher() {
		return interfaces.ErrNotAuthorized
	}
	for i := range s.ideas {
		if s.ideas[i].ID != id {
			continue
		}
		s.ideas = append(s.ideas[:i], s.ideas[i+1:]...)
		if err := s.storage.IdeaStorage().SaveSnapshot(ctx, s.ideas); err != nil {
			return fmt.Errorf("idea deleted but not persisted: %w", err)
		}
		s.logger.Info().Str("idea_id", id).Msg("Trade idea deleted")
		return nil
	}
	return interfaces.ErrNotFound
}
