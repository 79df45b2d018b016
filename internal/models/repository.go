package models

// Repository is a git repository discovered under one of the configured
// workspace roots. Discovered fresh on every generate run, never persisted.
type Repository struct {
	Path        string `json:"path"`
	DisplayName string `json:"displayName"`
	Root        string `json:"root"`
}
