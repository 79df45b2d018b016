package mocks

import (
	"context"

	"gitscribe/internal/models"
	"gitscribe/internal/repositories"
)

type TemplateServiceMock struct {
	GetTemplateFunc func(id string) (*models.Template, error)
	Templates       map[string]*models.Template
}

func (m *TemplateServiceMock) Startup(ctx context.Context) {}

func (m *TemplateServiceMock) GetTemplate(id string) (*models.Template, error) {
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(id)
	}
	if tmpl, ok := m.Templates[id]; ok {
		return tmpl, nil
	}
	return nil, repositories.ErrTemplateNotFound
}

func (m *TemplateServiceMock) ListTemplates() ([]*models.Template, error) {
	out := make([]*models.Template, 0, len(m.Templates))
	for _, tmpl := range m.Templates {
		out = append(out, tmpl)
	}
	return out, nil
}

func (m *TemplateServiceMock) CreateTemplate(name, promptBody string, applicablePaths []string) *models.Template {
	tmpl := &models.Template{ID: "tmpl-" + name, Name: name, PromptBody: promptBody, ApplicablePaths: applicablePaths}
	if m.Templates == nil {
		m.Templates = map[string]*models.Template{}
	}
	m.Templates[tmpl.ID] = tmpl
	return tmpl
}

func (m *TemplateServiceMock) UpdateTemplate(id, name, promptBody string) *models.Template {
	tmpl, ok := m.Templates[id]
	if !ok {
		return nil
	}
	tmpl.Name = name
	tmpl.PromptBody = promptBody
	return tmpl
}

func (m *TemplateServiceMock) DeleteTemplate(id string) {
	delete(m.Templates, id)
}
