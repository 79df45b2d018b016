package models

// LLMModel represents a single Gemini model option exposed to the panel.
type LLMModel struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
	Default     bool   `json:"default,omitempty"`
}
