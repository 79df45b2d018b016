package unit_tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitscribe/internal/events"
	"gitscribe/internal/models"
	"gitscribe/internal/services"
	"gitscribe/internal/tests/mocks"
	"gitscribe/internal/utils"
)

// captureEvents swaps the panel emitter for a recorder and restores the
// no-op emitter when the test ends.
func captureEvents(t *testing.T) *[]events.PanelEvent {
	t.Helper()
	var captured []events.PanelEvent
	events.SetCustomEmitter(func(ctx context.Context, name string, evt events.PanelEvent) {
		captured = append(captured, evt)
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return &captured
}

func newModelCatalog(t *testing.T) services.ModelService {
	t.Helper()
	catalog, err := services.NewModelService()
	utils.NilError(t, err)
	return catalog
}

func TestSettingsService_SetModel_Persists(t *testing.T) {
	var updated *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			updated = settings
			return nil
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.SetModel("gemini-2.5-pro")

	if updated == nil {
		t.Fatal("expected settings to be persisted")
	}
	utils.Equal(t, updated.SelectedModel, "gemini-2.5-pro")
}

func TestSettingsService_SetModel_UnknownKeyWarns(t *testing.T) {
	captured := captureEvents(t)
	updateCalls := 0
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			updateCalls++
			return nil
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.SetModel("gpt-4o")

	utils.Equal(t, updateCalls, 0)
	utils.Equal(t, len(*captured), 1)
	utils.Equal(t, (*captured)[0].Type, events.EventWarn)
}

func TestSettingsService_PersistFailure_NotifiesWithoutReturning(t *testing.T) {
	captured := captureEvents(t)
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			return errors.New("disk full")
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.SetAlwaysUseGenerated(true)

	utils.Equal(t, len(*captured), 1)
	utils.Equal(t, (*captured)[0].Type, events.EventError)
	if !strings.Contains((*captured)[0].Message, "disk full") {
		t.Fatalf("expected failure detail in notification, got %q", (*captured)[0].Message)
	}
}

func TestSettingsService_AddWorkspaceRoot_Deduplicates(t *testing.T) {
	current := &models.AppSettings{ID: 1, Version: 1, SelectedModel: "gemini-2.5-flash"}
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return current, nil
		},
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			current = settings
			return nil
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.AddWorkspaceRoot("/home/dev/projects")
	service.AddWorkspaceRoot("/home/dev/projects")
	service.AddWorkspaceRoot("")

	utils.Equal(t, len(current.WorkspaceRoots), 1)
	utils.Equal(t, current.WorkspaceRoots[0], "/home/dev/projects")
}

func TestSettingsService_RemoveWorkspaceRoot(t *testing.T) {
	current := &models.AppSettings{
		ID:             1,
		Version:        1,
		SelectedModel:  "gemini-2.5-flash",
		WorkspaceRoots: []string{"/a", "/b", "/c"},
	}
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return current, nil
		},
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			current = settings
			return nil
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.RemoveWorkspaceRoot("/b")

	utils.Equal(t, len(current.WorkspaceRoots), 2)
	utils.Equal(t, current.WorkspaceRoots[0], "/a")
	utils.Equal(t, current.WorkspaceRoots[1], "/c")
}

func TestSettingsService_SetDefaultTemplateID_AllowsDangling(t *testing.T) {
	var updated *models.AppSettings
	mockRepo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			updated = settings
			return nil
		},
	}
	service := services.NewSettingsService(mockRepo, newModelCatalog(t))
	service.Startup(context.Background())

	service.SetDefaultTemplateID("tmpl-gone")

	if updated == nil {
		t.Fatal("expected settings to be persisted")
	}
	utils.Equal(t, updated.DefaultTemplateID, "tmpl-gone")
}
