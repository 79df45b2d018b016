package services

import (
	"gorm.io/gorm"

	"gitscribe/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	Settings  SettingsService
	Templates TemplateService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, modelCat ModelService) *DbServices {
	settingsRepo := repositories.NewAppSettingsRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)

	return &DbServices{
		Settings:  NewSettingsService(settingsRepo, modelCat),
		Templates: NewTemplateService(templateRepo, settingsRepo),
	}
}
