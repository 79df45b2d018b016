package mocks

import (
	"context"

	"gitscribe/internal/models"
)

type SettingsServiceMock struct {
	GetFunc func() (*models.AppSettings, error)

	ModelSets     []string
	AlwaysSets    []bool
	PromptSets    []string
	DefaultIDSets []string
	RootsAdded    []string
	RootsRemoved  []string
}

func (m *SettingsServiceMock) Startup(ctx context.Context) {}

func (m *SettingsServiceMock) Get() (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return &models.AppSettings{
		ID:             1,
		Version:        1,
		SelectedModel:  "gemini-2.5-flash",
		WorkspaceRoots: []string{"/tmp/workspace"},
	}, nil
}

func (m *SettingsServiceMock) SetModel(key string) {
	m.ModelSets = append(m.ModelSets, key)
}

func (m *SettingsServiceMock) SetAlwaysUseGenerated(always bool) {
	m.AlwaysSets = append(m.AlwaysSets, always)
}

func (m *SettingsServiceMock) SetPrompt(text string) {
	m.PromptSets = append(m.PromptSets, text)
}

func (m *SettingsServiceMock) SetDefaultTemplateID(id string) {
	m.DefaultIDSets = append(m.DefaultIDSets, id)
}

func (m *SettingsServiceMock) AddWorkspaceRoot(path string) {
	m.RootsAdded = append(m.RootsAdded, path)
}

func (m *SettingsServiceMock) RemoveWorkspaceRoot(path string) {
	m.RootsRemoved = append(m.RootsRemoved, path)
}
