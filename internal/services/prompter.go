package services

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"gitscribe/internal/models"
)

// MessageChoice is the user's pick in the post-generation modal.
type MessageChoice string

const (
	ChoiceUseMessage MessageChoice = "Use This Message"
	ChoiceCopy       MessageChoice = "Copy to Clipboard"
	ChoiceCancel     MessageChoice = "Cancel"
)

// Prompter covers the two user-decision points of a workflow run. A nil
// repository return means the user cancelled the picker; cancellation is
// a distinct outcome, never an error.
type Prompter interface {
	PickRepository(ctx context.Context, repos []models.Repository) (*models.Repository, error)
	ConfirmMessage(ctx context.Context, message string) (MessageChoice, error)
}

// dialogPrompter renders decisions as native message dialogs.
type dialogPrompter struct{}

func NewDialogPrompter() Prompter {
	return &dialogPrompter{}
}

func (p *dialogPrompter) PickRepository(ctx context.Context, repos []models.Repository) (*models.Repository, error) {
	buttons := make([]string, 0, len(repos)+1)
	for _, repo := range repos {
		buttons = append(buttons, repo.DisplayName)
	}
	buttons = append(buttons, string(ChoiceCancel))

	selected, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:         runtime.QuestionDialog,
		Title:        "Select Repository",
		Message:      "Multiple git repositories found. Which one should the commit message be generated for?",
		Buttons:      buttons,
		CancelButton: string(ChoiceCancel),
	})
	if err != nil {
		return nil, fmt.Errorf("repository picker failed: %w", err)
	}
	for i := range repos {
		if repos[i].DisplayName == selected {
			return &repos[i], nil
		}
	}
	return nil, nil
}

func (p *dialogPrompter) ConfirmMessage(ctx context.Context, message string) (MessageChoice, error) {
	selected, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:          runtime.QuestionDialog,
		Title:         "Generated Commit Message",
		Message:       message,
		Buttons:       []string{string(ChoiceUseMessage), string(ChoiceCopy), string(ChoiceCancel)},
		DefaultButton: string(ChoiceUseMessage),
		CancelButton:  string(ChoiceCancel),
	})
	if err != nil {
		return ChoiceCancel, fmt.Errorf("confirmation dialog failed: %w", err)
	}
	switch selected {
	case string(ChoiceUseMessage):
		return ChoiceUseMessage, nil
	case string(ChoiceCopy):
		return ChoiceCopy, nil
	default:
		return ChoiceCancel, nil
	}
}
