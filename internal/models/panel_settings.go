package models

// PanelSettings is the snapshot pushed to the panel on startup and after
// every settings mutation. The panel overwrites its mirror wholesale with
// this payload; it never receives the raw API key, only its presence.
type PanelSettings struct {
	HasAPIKey          bool       `json:"hasApiKey"`
	Prompt             string     `json:"prompt"`
	SelectedModel      string     `json:"selectedModel"`
	AlwaysUseGenerated bool       `json:"alwaysUseGenerated"`
	Templates          []Template `json:"templates"`
	DefaultTemplateID  string     `json:"selectedTemplateId"`
	WorkspaceRoots     []string   `json:"workspaceRoots"`
	Models             []LLMModel `json:"models"`
	HasHistory         bool       `json:"hasHistory"`
}
