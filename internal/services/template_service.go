package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gitscribe/internal/events"
	"gitscribe/internal/models"
	"gitscribe/internal/repositories"
)

// templateIDPrefix + creation timestamp forms the opaque template id.
// Good enough for a single-user local tool; not collision-proof under
// concurrent writers, which are out of scope here.
const templateIDPrefix = "tmpl-"

type TemplateService interface {
	GetTemplate(id string) (*models.Template, error)
	ListTemplates() ([]*models.Template, error)
	CreateTemplate(name, promptBody string, applicablePaths []string) *models.Template
	UpdateTemplate(id, name, promptBody string) *models.Template
	DeleteTemplate(id string)
	Startup(ctx context.Context)
}

type templateService struct {
	repo     repositories.TemplateRepository
	settings repositories.AppSettingsRepository
	ctx      context.Context
}

func (s *templateService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func NewTemplateService(repo repositories.TemplateRepository, settings repositories.AppSettingsRepository) TemplateService {
	return &templateService{repo: repo, settings: settings}
}

func newTemplateID() string {
	return templateIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (s *templateService) GetTemplate(id string) (*models.Template, error) {
	tmpl, err := s.repo.Get(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get template %s: %w", id, err)
	}
	return tmpl, nil
}

func (s *templateService) ListTemplates() ([]*models.Template, error) {
	list, err := s.repo.GetAll(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list templates: %w", err)
	}
	return list, nil
}

// CreateTemplate persists a new template. Writes are fire-and-forget: a
// persistence failure is surfaced as a notification, not returned, and the
// template the user already sees stays in the panel mirror.
func (s *templateService) CreateTemplate(name, promptBody string, applicablePaths []string) *models.Template {
	tmpl := &models.Template{
		ID:              newTemplateID(),
		Name:            name,
		PromptBody:      promptBody,
		ApplicablePaths: applicablePaths,
	}
	if err := s.repo.Create(s.ctx, tmpl); err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to save template: %v", err)))
		return nil
	}
	return tmpl
}

func (s *templateService) UpdateTemplate(id, name, promptBody string) *models.Template {
	tmpl, err := s.repo.Get(s.ctx, id)
	if err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Template not found: %s", id)))
		return nil
	}
	if name != "" {
		tmpl.Name = name
	}
	if promptBody != "" {
		tmpl.PromptBody = promptBody
	}
	if err := s.repo.Update(s.ctx, tmpl); err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to update template: %v", err)))
		return nil
	}
	return tmpl
}

// DeleteTemplate removes a template. Deleting an unknown id is a no-op
// that still surfaces a "not found" notification. When the deleted
// template was the default, the dangling default id is cleared.
func (s *templateService) DeleteTemplate(id string) {
	if err := s.repo.Delete(s.ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			events.Emit(s.ctx, events.PanelNotify, events.NewWarn(fmt.Sprintf("Template not found: %s", id)))
			return
		}
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to delete template: %v", err)))
		return
	}

	settings, err := s.settings.Get(s.ctx)
	if err != nil {
		events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to load settings: %v", err)))
		return
	}
	if settings.DefaultTemplateID == id {
		settings.DefaultTemplateID = ""
		if err := s.settings.Update(s.ctx, settings); err != nil {
			events.Emit(s.ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to persist settings: %v", err)))
		}
	}
}
