// Package auth implements the subscriber login gate: a static shared-secret
// access code and a persisted session. It supplies the read-only User that
// the rest of the core consumes.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
)

const defaultStudentName = "New Student"

// Service manages the access-code gate and the persisted user session.
type Service struct {
	accessCode string
	mentorName string
	sessions   interfaces.SessionStorage
	logger     arbor.ILogger
}

// NewService creates a new authentication service.
func NewService(config *common.AuthConfig, sessions interfaces.SessionStorage, logger arbor.ILogger) *Service {
	return &Service{
		accessCode: config.AccessCode,
		mentorName: config.MentorName,
		sessions:   sessions,
		logger:     logger,
	}
}

// Resume returns the stored session, or nil when none exists.
func (s *Service) Resume(ctx context.Context) (*models.User, error) {
	user, err := s.sessions.LoadSession(ctx)
	if err == interfaces.ErrSnapshotNotFound {
		s.logger.Debug().Msg("No stored session found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("Session resumed")
	return user, nil
}

// Login checks the shared access code and creates a STUDENT session. A wrong
// code stores nothing.
func (s *Service) Login(ctx context.Context, displayName, accessCode string) (*models.User, error) {
	if subtle.ConstantTimeCompare([]byte(accessCode), []byte(s.accessCode)) != 1 {
		return nil, interfaces.ErrInvalidAccessCode
	}
	if displayName == "" {
		displayName = defaultStudentName
	}

	user := &models.User{
		ID:          common.NewUserID(),
		Role:        models.RoleStudent,
		DisplayName: displayName,
	}
	if err := s.sessions.SaveSession(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("Login accepted")
	return user, nil
}

// SwitchRole flips the session between STUDENT and TEACHER (the demo role
// toggle). The TEACHER session takes the configured mentor display name.
func (s *Service) SwitchRole(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, interfaces.ErrNotFound
	}

	switched := *user
	if user.Role == models.RoleTeacher {
		switched.Role = models.RoleStudent
		switched.DisplayName = defaultStudentName
	} else {
		switched.Role = models.RoleTeacher
		switched.DisplayName = s.mentorName
	}

	if err := s.sessions.SaveSession(ctx, &switched); err != nil {
		return nil, fmt.Errorf("failed to persist role switch: %w", err)
	}

	s.logger.Info().Str("role", string(switched.Role)).Msg("Role switched")
	return &switched, nil
}

// Logout clears the stored session.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.ClearSession(ctx)
}
