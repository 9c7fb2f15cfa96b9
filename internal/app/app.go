// Package app wires the Orbit components together: storage, the entity
// store, the login gate, the advisory AI layer, and the notification toast.
// It exposes the operations the (external) rendering layer drives.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/orbit/internal/common"
	"github.com/ternarybob/orbit/internal/interfaces"
	"github.com/ternarybob/orbit/internal/models"
	"github.com/ternarybob/orbit/internal/seed"
	"github.com/ternarybob/orbit/internal/services/auth"
	"github.com/ternarybob/orbit/internal/services/llm"
	"github.com/ternarybob/orbit/internal/stats"
	"github.com/ternarybob/orbit/internal/storage/badger"
	"github.com/ternarybob/orbit/internal/store"
)

// App holds all application components and dependencies.
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager
	Store          *store.Store
	AuthService    *auth.Service
	Insight        *llm.InsightService
	Notifier       *Notifier

	user *models.User
}

// New creates the application and opens storage. The advisory AI provider is
// optional: if it cannot be constructed (usually a missing API key) the app
// runs with fixed fallback text.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var generator interfaces.TextGenerator
	if g, err := llm.NewProvider(&config.LLM, logger); err != nil {
		logger.Warn().Err(err).Msg("Advisory AI disabled")
	} else {
		generator = g
	}

	return &App{
		Config:         config,
		Logger:         logger,
		StorageManager: storageManager,
		Store:          store.New(storageManager, logger),
		AuthService:    auth.NewService(&config.Auth, storageManager.SessionStorage(), logger),
		Insight:        llm.NewInsightService(generator, logger),
		Notifier:       NewNotifier(),
	}, nil
}

// Start resumes (or creates) the session and hydrates the store, seeding the
// collections on first run.
func (a *App) Start(ctx context.Context) error {
	user, err := a.AuthService.Resume(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		// First run on this device: open a student session with the
		// configured access code.
		user, err = a.AuthService.Login(ctx, "", a.Config.Auth.AccessCode)
		if err != nil {
			return fmt.Errorf("failed to create initial session: %w", err)
		}
	}
	a.user = user

	now := time.Now()
	generator := seed.NewGenerator(a.Config.Seed.RandomSeed, a.Config.Auth.MentorName)
	defaults := store.HydrateDefaults{
		Signals: func() []models.Signal {
			return generator.Signals(now, a.Config.Seed.CurrentMonth, a.Config.Seed.PreviousMonth)
		},
		Conversations: func() []models.Conversation {
			return seed.DefaultConversations(user.ID, user.DisplayName, a.Config.Auth.MentorName, now)
		},
		Ideas: func() []models.TradeIdea {
			return seed.DefaultIdeas(a.Config.Auth.MentorName, now)
		},
	}
	if err := a.Store.Hydrate(ctx, defaults); err != nil {
		return err
	}

	a.logStartupSummary(now)
	return nil
}

func (a *App) logStartupSummary(now time.Time) {
	signals := a.Store.Signals()
	classified := stats.Classify(signals)
	report := stats.Aggregate(signals, now)

	a.Logger.Info().
		Str("user", a.user.DisplayName).
		Str("role", string(a.user.Role)).
		Int("active_signals", len(classified.Active)).
		Int("past_signals", len(classified.Past)).
		Int("all_time_trades", report.AllTime.TradeCount).
		Int("win_rate", report.AllTime.WinRate).
		Int("net_pips", report.AllTime.NetPips).
		Int("unread", a.Store.TotalUnread()).
		Msg("Orbit ready")
}

// Close releases storage.
func (a *App) Close() error {
	if a.StorageManager != nil {
		return a.StorageManager.Close()
	}
	return nil
}

// User returns the current session user.
func (a *App) User() *models.User {
	return a.user
}

// SwitchRole toggles the demo STUDENT/TEACHER view.
func (a *App) SwitchRole(ctx context.Context) (*models.User, error) {
	switched, err := a.AuthService.SwitchRole(ctx, a.user)
	if err != nil {
		return nil, err
	}
	a.user = switched
	label := "Student"
	if switched.Role == models.RoleTeacher {
		label = "Teacher"
	}
	a.Notifier.Notify(fmt.Sprintf("Switched to %s View", label))
	return switched, nil
}

// LiveSignals returns the ACTIVE subset in insertion order.
func (a *App) LiveSignals() []models.Signal {
	return stats.Classify(a.Store.Signals()).Active
}

// History returns past signals grouped by calendar day, newest first.
func (a *App) History() []stats.DayGroup {
	classified := stats.Classify(a.Store.Signals())
	return stats.GroupByDay(classified.Past, time.Local)
}

// Performance recomputes the trailing-window report as of now.
func (a *App) Performance() stats.Report {
	return stats.Aggregate(a.Store.Signals(), time.Now())
}

// PublishSignal posts a new trade call and raises a toast.
func (a *App) PublishSignal(ctx context.Context, draft models.SignalDraft) (*models.Signal, error) {
	signal, err := a.Store.AddSignal(ctx, a.user, draft)
	if err != nil {
		return nil, err
	}
	a.Notifier.Notify(fmt.Sprintf("New Signal Alert: %s %s", signal.Asset, signal.Direction))
	return signal, nil
}

// ResolveSignal records a trade outcome and raises a toast.
func (a *App) ResolveSignal(ctx context.Context, id string, status models.SignalStatus, resultImage *models.Image) (*models.Signal, error) {
	signal, err := a.Store.ResolveSignal(ctx, a.user, id, status, resultImage)
	if err != nil {
		return nil, err
	}
	a.Notifier.Notify(fmt.Sprintf("Trade Update: %s", strings.ReplaceAll(string(status), "_", " ")))
	return signal, nil
}

// PostIdea publishes market commentary and raises a toast.
func (a *App) PostIdea(ctx context.Context, draft models.IdeaDraft) (*models.TradeIdea, error) {
	idea, err := a.Store.PostIdea(ctx, a.user, draft)
	if err != nil {
		return nil, err
	}
	a.Notifier.Notify(fmt.Sprintf("New Market Idea: %s", idea.Title))
	return idea, nil
}

// Inbox returns the conversations visible to the current user.
func (a *App) Inbox() []models.Conversation {
	return a.Store.ConversationsFor(a.user.Role, a.user.ID)
}

// SendMessage appends a message from the local user to a conversation.
func (a *App) SendMessage(ctx context.Context, conversationID, text string, image *models.Image) (*models.ChatMessage, error) {
	return a.Store.AppendMessage(ctx, conversationID, a.user.DisplayName, true, text, image)
}

// OpenConversation marks a thread read (the mark-read-on-open behavior).
func (a *App) OpenConversation(ctx context.Context, conversationID string) error {
	return a.Store.MarkRead(ctx, conversationID)
}

// SignalRationale returns advisory AI text for a signal; it never fails.
func (a *App) SignalRationale(ctx context.Context, signal models.Signal) string {
	return a.Insight.AnalyzeSignal(ctx, signal)
}

// MarketPulse returns an advisory market blurb; it never fails.
func (a *App) MarketPulse(ctx context.Context) string {
	return a.Insight.MarketPulse(ctx)
}
