package mocks

import (
	"context"

	"gitscribe/internal/models"
	"gitscribe/internal/services"
)

// Collaborator mocks for orchestrator tests. All follow the same shape:
// optional function fields, zero-value behavior otherwise.

type RepositoryFinderMock struct {
	LocateFunc     func(roots []string) []models.Repository
	FindByPathFunc func(roots []string, repoPath string) (*models.Repository, bool)
	LocateCalls    int
}

func (m *RepositoryFinderMock) Locate(roots []string) []models.Repository {
	m.LocateCalls++
	if m.LocateFunc != nil {
		return m.LocateFunc(roots)
	}
	return nil
}

func (m *RepositoryFinderMock) FindByPath(roots []string, repoPath string) (*models.Repository, bool) {
	if m.FindByPathFunc != nil {
		return m.FindByPathFunc(roots, repoPath)
	}
	for _, repo := range m.Locate(roots) {
		if repo.Path == repoPath {
			return &repo, true
		}
	}
	return nil, false
}

type DiffExtractorMock struct {
	StagedDiffFunc func(ctx context.Context, repoPath string) (string, error)
	Calls          int
}

func (m *DiffExtractorMock) StagedDiff(ctx context.Context, repoPath string) (string, error) {
	m.Calls++
	if m.StagedDiffFunc != nil {
		return m.StagedDiffFunc(ctx, repoPath)
	}
	return "", nil
}

type MessageGeneratorMock struct {
	GenerateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)
	Calls        int
	LastPrompt   string
	LastModel    string
}

func (m *MessageGeneratorMock) Generate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastModel = model
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, apiKey, model, prompt)
	}
	return "generated message", nil
}

type PrompterMock struct {
	PickRepositoryFunc func(ctx context.Context, repos []models.Repository) (*models.Repository, error)
	ConfirmMessageFunc func(ctx context.Context, message string) (services.MessageChoice, error)
	PickCalls          int
	ConfirmCalls       int
}

func (m *PrompterMock) PickRepository(ctx context.Context, repos []models.Repository) (*models.Repository, error) {
	m.PickCalls++
	if m.PickRepositoryFunc != nil {
		return m.PickRepositoryFunc(ctx, repos)
	}
	if len(repos) > 0 {
		return &repos[0], nil
	}
	return nil, nil
}

func (m *PrompterMock) ConfirmMessage(ctx context.Context, message string) (services.MessageChoice, error) {
	m.ConfirmCalls++
	if m.ConfirmMessageFunc != nil {
		return m.ConfirmMessageFunc(ctx, message)
	}
	return services.ChoiceUseMessage, nil
}

type ClipboardMock struct {
	SetTextFunc func(ctx context.Context, text string) error
	Texts       []string
}

func (m *ClipboardMock) SetText(ctx context.Context, text string) error {
	m.Texts = append(m.Texts, text)
	if m.SetTextFunc != nil {
		return m.SetTextFunc(ctx, text)
	}
	return nil
}

type CommitSinkMock struct {
	SetCommitMessageFunc func(ctx context.Context, repoPath, message string) error
	Applied              []string
}

func (m *CommitSinkMock) SetCommitMessage(ctx context.Context, repoPath, message string) error {
	m.Applied = append(m.Applied, repoPath+": "+message)
	if m.SetCommitMessageFunc != nil {
		return m.SetCommitMessageFunc(ctx, repoPath, message)
	}
	return nil
}

type CredentialStoreMock struct {
	GetApiKeyFunc func() (string, error)
}

func (m *CredentialStoreMock) GetApiKey() (string, error) {
	if m.GetApiKeyFunc != nil {
		return m.GetApiKeyFunc()
	}
	return "", nil
}
