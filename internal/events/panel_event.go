package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Event names consumed by the panel.
const (
	PanelNotify          = "panel:notify"
	PanelProgress        = "panel:progress"
	PanelClearGenerating = "panel:clearGenerating"
	PanelSettingsUpdated = "panel:settingsUpdated"
	PanelSetCommitInput  = "panel:setCommitMessage"
	PanelHistoryUpdated  = "panel:historyUpdated"
)

// PanelEvent is the payload for notification and progress events.
type PanelEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"runId,omitempty"`
}

// CommitInputEvent carries a generated message to a repository's commit
// input field in the panel.
type CommitInputEvent struct {
	RepoPath string `json:"repoPath"`
	Message  string `json:"message"`
}

type contextKey string

const runContextKey contextKey = "gitscribe/events/run"

// WithRun returns a derived context annotated with the given workflow run id
// so event emitters can automatically scope payloads.
func WithRun(ctx context.Context, runID string) context.Context {
	if strings.TrimSpace(runID) == "" {
		return ctx
	}
	return context.WithValue(ctx, runContextKey, runID)
}

// RunFromContext extracts the workflow run id associated with ctx.
func RunFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(runContextKey).(string); ok {
		return v
	}
	return ""
}

// NewRunID mints a fresh workflow run identifier.
func NewRunID() string {
	return uuid.NewString()
}

func createPanelEvent(eventType EventType, message string) PanelEvent {
	return PanelEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info PanelEvent.
func NewInfo(message string) PanelEvent {
	return createPanelEvent(EventInfo, message)
}

// NewWarn creates a warn PanelEvent.
func NewWarn(message string) PanelEvent {
	return createPanelEvent(EventWarn, message)
}

// NewError creates an error PanelEvent.
func NewError(message string) PanelEvent {
	return createPanelEvent(EventError, message)
}

// NewSuccess creates a success PanelEvent.
func NewSuccess(message string) PanelEvent {
	return createPanelEvent(EventSuccess, message)
}
