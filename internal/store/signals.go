package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

// Signals returns a copy of the current signal collection.
func (s *Store) Signals() []models.Signal {
	out := make([]models.Signal, len(s.signals))
	copy(out, s.signals)
	return out
}

// AddSignal validates the draft and publishes a new ACTIVE signal at the head
// of the collection. Only a TEACHER may publish. A validation failure inserts
// nothing.
func (s *Store) AddSignal(ctx context.Context, actor *models.User, draft models.SignalDraft) (*models.Signal, error) {
	if !actor.IsTeacher() {
		return nil, interfaces.ErrNotAuthorized
	}
	if err := s.validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("invalid signal draft: %w", err)
	}

	signal := models.Signal{
		ID:          common.NewSignalID(),
		Asset:       draft.Asset,
		Direction:   draft.Direction,
		EntryPrice:  draft.EntryPrice,
		StopLoss:    draft.StopLoss,
		TakeProfit1: draft.TakeProfit1,
		TakeProfit2: draft.TakeProfit2,
		TakeProfit3: draft.TakeProfit3,
		CreatedAt:   s.now(),
		Status:      models.StatusActive,
		Notes:       draft.Notes,
		AuthorName:  actor.DisplayName,
		SetupImage:  draft.SetupImage,
	}

	s.signals = append([]models.Signal{signal}, s.signals...)
	if err := s.storage.SignalStorage().SaveSnapshot(ctx, s.signals); err != nil {
		return &signal, fmt.Errorf("signal added but not persisted: %w", err)
	}

	s.logger.Info().
		Str("signal_id", signal.ID).
		Str("asset", signal.Asset).
		Str("direction", string(signal.Direction)).
		Msg("Signal published")
	return &signal, nil
}

// ResolveSignal moves a signal out of ACTIVE to the given resolved status,
// optionally attaching a result image. Resolved signals cannot be changed
// again.
func (s *Store) ResolveSignal(ctx context.Context, actor *models.User, id string, status models.SignalStatus, resultImage *models.Image) (*models.Signal, error) {
	if !actor.IsTeacher() {
		return nil, interfaces.ErrNotAuthorized
	}
	if !status.IsResolved() {
		return nil, fmt.Errorf("invalid target status %q: a signal can only leave ACTIVE", status)
	}

	for i := range s.signals {
		if s.signals[i].ID != id {
			continue
		}
		if s.signals[i].Status != models.StatusActive {
			return nil, interfaces.ErrAlreadyResolved
		}
		s.signals[i].Status = status
		if resultImage != nil {
			s.signals[i].ResultImage = resultImage
		}
		resolved := s.signals[i]

		if err := s.storage.SignalStorage().SaveSnapshot(ctx, s.signals); err != nil {
			return &resolved, fmt.Errorf("signal resolved but not persisted: %w", err)
		}
		s.logger.Info().
			Str("signal_id", id).
			Str("status", string(status)).
			Msg("Signal resolved")
		return &resolved, nil
	}
	return nil, interfaces.ErrNotFound
}

// DeleteSignal removes a signal from the collection.
func (s *Store) DeleteSignal(ctx context.Context, actor *models.User, id string) error {
	if !actor.IsTeacher() {
		return interfaces.ErrNotAuthorized
	}
	for i := range s.signals {
		if s.signals[i].ID != id {
			continue
		}
		s.signals = append(s.signals[:i], s.signals[i+1:]...)
		if err := s.storage.SignalStorage().SaveSnapshot(ctx, s.signals); err != nil {
			return fmt.Errorf("signal deleted but not persisted: %w", err)
		}
		s.logger.Info().Str("signal_id", id).Msg("Signal deleted")
		return nil
	}
	return interfaces.ErrNotFound
}

// TodaySignalCount reports how many signals were published since local
// midnight.
func (s *Store) TodaySignalCount() int {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count := 0
	for _, sig := range s.signals {
		if !sig.CreatedAt.Before(midnight) {
			count++
		}
	}
	return count
}
