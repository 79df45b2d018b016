package services

import (
	"context"
	"fmt"

	"gitscribe/internal/events"
	"gitscribe/internal/models"
)

// PanelService is the backend half of the panel protocol: it answers
// GetInitialSettings and turns panel intents into settings/template/store
// mutations, then pushes a fresh snapshot so the panel mirror can
// overwrite itself wholesale.
type PanelService struct {
	context     context.Context
	settings    SettingsService
	templates   TemplateService
	credentials *KeyringService
	models      ModelService
	history     HistoryService
}

func NewPanelService(settings SettingsService, templates TemplateService, credentials *KeyringService, modelCat ModelService, history HistoryService) *PanelService {
	return &PanelService{
		settings:    settings,
		templates:   templates,
		credentials: credentials,
		models:      modelCat,
		history:     history,
	}
}

func (s *PanelService) Startup(ctx context.Context) {
	s.context = ctx
}

// GetInitialSettings builds the full snapshot the panel renders from.
// The API key itself never crosses this boundary, only its presence.
func (s *PanelService) GetInitialSettings() (*models.PanelSettings, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("service: load settings: %w", err)
	}

	list, err := s.templates.ListTemplates()
	if err != nil {
		return nil, fmt.Errorf("service: list templates: %w", err)
	}
	templates := make([]models.Template, 0, len(list))
	for _, tmpl := range list {
		templates = append(templates, *tmpl)
	}

	return &models.PanelSettings{
		HasAPIKey:          s.credentials.HasApiKey(),
		Prompt:             settings.PromptOverride,
		SelectedModel:      settings.SelectedModel,
		AlwaysUseGenerated: settings.AlwaysUseGenerated,
		Templates:          templates,
		DefaultTemplateID:  settings.DefaultTemplateID,
		WorkspaceRoots:     settings.WorkspaceRoots,
		Models:             s.models.ListModels(),
		HasHistory:         s.history.HasHistory(),
	}, nil
}

// broadcast pushes a fresh snapshot. A snapshot that cannot be built is
// logged through the notify channel; the panel keeps its current mirror.
func (s *PanelService) broadcast() {
	snapshot, err := s.GetInitialSettings()
	if err != nil {
		events.Emit(s.context, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to refresh settings: %v", err)))
		return
	}
	events.EmitPayload(s.context, events.PanelSettingsUpdated, snapshot)
}

func (s *PanelService) SetApiKey(key string) {
	if err := s.credentials.StoreApiKey(key); err != nil {
		events.Emit(s.context, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to store API key: %v", err)))
		return
	}
	events.Emit(s.context, events.PanelNotify, events.NewSuccess("API key saved."))
	s.broadcast()
}

func (s *PanelService) SetPrompt(text string) {
	s.settings.SetPrompt(text)
	s.broadcast()
}

func (s *PanelService) SetModel(key string) {
	s.settings.SetModel(key)
	s.broadcast()
}

func (s *PanelService) SetAlwaysUseGenerated(always bool) {
	s.settings.SetAlwaysUseGenerated(always)
	s.broadcast()
}

func (s *PanelService) SetDefaultTemplate(id string) {
	s.settings.SetDefaultTemplateID(id)
	s.broadcast()
}

func (s *PanelService) CreateTemplate(name, promptBody string) *models.Template {
	tmpl := s.templates.CreateTemplate(name, promptBody, nil)
	s.broadcast()
	return tmpl
}

func (s *PanelService) UpdateTemplate(id, name, promptBody string) *models.Template {
	tmpl := s.templates.UpdateTemplate(id, name, promptBody)
	s.broadcast()
	return tmpl
}

func (s *PanelService) DeleteTemplate(id string) {
	s.templates.DeleteTemplate(id)
	s.broadcast()
}

func (s *PanelService) AddWorkspaceRoot(path string) {
	s.settings.AddWorkspaceRoot(path)
	s.broadcast()
}

func (s *PanelService) RemoveWorkspaceRoot(path string) {
	s.settings.RemoveWorkspaceRoot(path)
	s.broadcast()
}
