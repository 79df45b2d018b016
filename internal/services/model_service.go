package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitscribe/internal/assets"
	"gitscribe/internal/models"
)

type ModelService interface {
	ListModels() []models.LLMModel
	GetModel(key string) (*models.LLMModel, error)
	DefaultModel() models.LLMModel
}

type modelService struct {
	order  []string
	models map[string]models.LLMModel
}

type rawModelFile struct {
	Models []models.LLMModel `json:"models"`
}

// NewModelService parses the embedded model catalog. The catalog is a
// build-time asset; a parse failure is a broken build, not a runtime state.
func NewModelService() (ModelService, error) {
	var parsed rawModelFile
	if err := json.Unmarshal(assets.ModelsData, &parsed); err != nil {
		return nil, fmt.Errorf("parse models asset: %w", err)
	}
	if len(parsed.Models) == 0 {
		return nil, fmt.Errorf("models asset is empty")
	}

	s := &modelService{models: make(map[string]models.LLMModel)}
	for _, mdl := range parsed.Models {
		key := strings.TrimSpace(mdl.Key)
		if key == "" {
			continue
		}
		mdl.Key = key
		s.order = append(s.order, key)
		s.models[key] = mdl
	}
	return s, nil
}

func (s *modelService) ListModels() []models.LLMModel {
	out := make([]models.LLMModel, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.models[key])
	}
	return out
}

func (s *modelService) GetModel(key string) (*models.LLMModel, error) {
	mdl, ok := s.models[strings.TrimSpace(key)]
	if !ok {
		return nil, fmt.Errorf("unknown model %q", key)
	}
	return &mdl, nil
}

func (s *modelService) DefaultModel() models.LLMModel {
	for _, key := range s.order {
		if s.models[key].Default {
			return s.models[key]
		}
	}
	return s.models[s.order[0]]
}
