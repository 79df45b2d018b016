package services

import (
	"context"

	"gitscribe/internal/events"
)

// CommitInputSink routes a generated message into a repository's commit
// input field in the panel. The panel may not currently exist; callers
// treat a send failure as "apply unavailable" and fall back to the
// clipboard.
type CommitInputSink interface {
	SetCommitMessage(ctx context.Context, repoPath, message string) error
}

type panelCommitSink struct{}

func NewPanelCommitSink() CommitInputSink {
	return &panelCommitSink{}
}

func (panelCommitSink) SetCommitMessage(ctx context.Context, repoPath, message string) error {
	events.EmitPayload(ctx, events.PanelSetCommitInput, events.CommitInputEvent{
		RepoPath: repoPath,
		Message:  message,
	})
	return nil
}
