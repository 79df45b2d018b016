package services

import (
	"context"
	"fmt"
	"strings"

	"gitscribe/internal/events"
	"gitscribe/internal/models"
	"gitscribe/internal/repositories"
)

type SettingsService interface {
	Startup(ctx context.Context)
	Get() (*models.AppSettings, error)
	SetModel(key string)
	SetAlwaysUseGenerated(always bool)
	SetPrompt(text string)
	SetDefaultTemplateID(id string)
	AddWorkspaceRoot(path string)
	RemoveWorkspaceRoot(path string)
}

type settingsService struct {
	repo   repositories.AppSettingsRepository
	models ModelService
	ctx    context.Context
}

func (s *settingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func NewSettingsService(repo repositories.AppSettingsRepository, modelService ModelService) SettingsService {
	return &settingsService{repo: repo, models: modelService}
}

// Get reads the settings row fresh. Workflow runs call this at their start
// so panel edits made between runs always take effect.
func (s *settingsService) Get() (*models.AppSettings, error) {
	return s.repo.Get(s.ctx)
}

// mutate applies fn to the current settings and persists the result.
// Persist failures are surfaced as notifications, not returned; the
// in-memory state the panel already shows is not rolled back.
func (s *settingsService) mutate(fn func(*models.AppSettings)) {
	settings, err := s.repo.Get(s.ctx)
	if err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to load settings: %v", err)))
		return
	}
	fn(settings)
	if err := s.repo.Update(s.ctx, settings); err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to persist settings: %v", err)))
	}
}

func (s *settingsService) SetModel(key string) {
	if _, err := s.models.GetModel(key); err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewWarn(fmt.Sprintf("Unknown model: %s", key)))
		return
	}
	s.mutate(func(settings *models.AppSettings) {
		settings.SelectedModel = strings.TrimSpace(key)
	})
}

func (s *settingsService) SetAlwaysUseGenerated(always bool) {
	s.mutate(func(settings *models.AppSettings) {
		settings.AlwaysUseGenerated = always
	})
}

func (s *settingsService) SetPrompt(text string) {
	s.mutate(func(settings *models.AppSettings) {
		settings.PromptOverride = text
	})
}

// SetDefaultTemplateID does not verify the id resolves; a dangling default
// is tolerated everywhere it is read.
func (s *settingsService) SetDefaultTemplateID(id string) {
	s.mutate(func(settings *models.AppSettings) {
		settings.DefaultTemplateID = strings.TrimSpace(id)
	})
}

func (s *settingsService) AddWorkspaceRoot(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	s.mutate(func(settings *models.AppSettings) {
		for _, existing := range settings.WorkspaceRoots {
			if existing == path {
				return
			}
		}
		settings.WorkspaceRoots = append(settings.WorkspaceRoots, path)
	})
}

func (s *settingsService) RemoveWorkspaceRoot(path string) {
	s.mutate(func(settings *models.AppSettings) {
		kept := settings.WorkspaceRoots[:0]
		for _, existing := range settings.WorkspaceRoots {
			if existing != path {
				kept = append(kept, existing)
			}
		}
		settings.WorkspaceRoots = kept
	})
}
