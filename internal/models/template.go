package models

// Template is a saved prompt template. IDs are opaque timestamp tokens
// minted by the template service, not database serials, so panel mirrors
// can reference them across restarts.
type Template struct {
	ID              string   `gorm:"primaryKey;size:64" json:"id"`
	Name            string   `gorm:"size:255;not null" json:"name"`
	PromptBody      string   `gorm:"type:text;not null" json:"promptBody"`
	ApplicablePaths []string `gorm:"serializer:json" json:"applicableProjectPaths"`
}
