package models

import "time"

// AppSettings is the single-row settings table (ID=1). The API key is not
// part of this row; it lives in the OS keychain.
type AppSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	Version            int       `gorm:"not null;default:1" json:"-"`
	SelectedModel      string    `gorm:"size:128;not null" json:"selectedModel"`
	AlwaysUseGenerated bool      `gorm:"not null;default:false" json:"alwaysUseGenerated"`
	PromptOverride     string    `gorm:"type:text" json:"promptOverride"`
	DefaultTemplateID  string    `gorm:"size:64" json:"defaultTemplateId"`
	WorkspaceRoots     []string  `gorm:"serializer:json" json:"workspaceRoots"`
	UpdatedAt          time.Time `json:"-"`
}
