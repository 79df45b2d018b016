package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName    = "gitscribe"
	geminiProvider = "gemini"
)

// KeyringService stores the Gemini API key in the OS keychain. The key
// never touches the settings database; the panel only learns whether one
// is present.
type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreApiKey(apiKey string) error {
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(serviceName, geminiProvider, apiKey)
}

func (s *KeyringService) GetApiKey() (string, error) {
	key, err := keyring.Get(serviceName, geminiProvider)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return key, err
}

func (s *KeyringService) DeleteApiKey() error {
	err := keyring.Delete(serviceName, geminiProvider)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasApiKey reports credential presence without exposing the secret.
func (s *KeyringService) HasApiKey() bool {
	key, err := s.GetApiKey()
	return err == nil && key != ""
}
