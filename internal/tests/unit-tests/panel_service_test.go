package unit_tests

import (
	"context"
	"testing"

	"github.com/zalando/go-keyring"

	"gitscribe/internal/events"
	"gitscribe/internal/models"
	"gitscribe/internal/services"
	"gitscribe/internal/tests/mocks"
	"gitscribe/internal/utils"
)

// capturePayloads records structured panel payloads (settings snapshots)
// and restores the no-op emitter when the test ends.
func capturePayloads(t *testing.T) *[]any {
	t.Helper()
	var captured []any
	events.SetCustomPayloadEmitter(func(ctx context.Context, name string, payload any) {
		if name == events.PanelSettingsUpdated {
			captured = append(captured, payload)
		}
	})
	t.Cleanup(func() { events.SetCustomPayloadEmitter(nil) })
	return &captured
}

func newPanelFixture(t *testing.T) (*services.PanelService, *mocks.SettingsServiceMock, *mocks.TemplateServiceMock) {
	t.Helper()
	keyring.MockInit()

	settings := &mocks.SettingsServiceMock{}
	templates := &mocks.TemplateServiceMock{}
	catalog, err := services.NewModelService()
	utils.NilError(t, err)

	panel := services.NewPanelService(settings, templates, services.NewKeyringService(), catalog, services.NewHistoryService())
	panel.Startup(context.Background())
	return panel, settings, templates
}

func TestPanelService_GetInitialSettings(t *testing.T) {
	panel, settings, _ := newPanelFixture(t)
	settings.GetFunc = func() (*models.AppSettings, error) {
		return &models.AppSettings{
			ID:             1,
			Version:        1,
			SelectedModel:  "gemini-2.5-pro",
			PromptOverride: "Keep it short.",
			WorkspaceRoots: []string{"/home/dev/projects"},
		}, nil
	}

	snapshot, err := panel.GetInitialSettings()
	utils.NilError(t, err)

	utils.Equal(t, snapshot.HasAPIKey, false)
	utils.Equal(t, snapshot.SelectedModel, "gemini-2.5-pro")
	utils.Equal(t, snapshot.Prompt, "Keep it short.")
	utils.Equal(t, snapshot.HasHistory, false)
	utils.Equal(t, len(snapshot.WorkspaceRoots), 1)
	if len(snapshot.Models) == 0 {
		t.Fatal("expected the model catalog in the snapshot")
	}
}

func TestPanelService_SetApiKey_PresenceOnly(t *testing.T) {
	captured := capturePayloads(t)
	panel, _, _ := newPanelFixture(t)

	panel.SetApiKey("secret-value")

	snapshot, err := panel.GetInitialSettings()
	utils.NilError(t, err)
	utils.Equal(t, snapshot.HasAPIKey, true)

	// A snapshot broadcast follows the mutation and never carries the key.
	utils.Equal(t, len(*captured), 1)
	pushed, ok := (*captured)[0].(*models.PanelSettings)
	utils.Equal(t, ok, true)
	utils.Equal(t, pushed.HasAPIKey, true)
}

func TestPanelService_SetApiKey_EmptyRejected(t *testing.T) {
	notifications := captureEvents(t)
	captured := capturePayloads(t)
	panel, _, _ := newPanelFixture(t)

	panel.SetApiKey("")

	utils.Equal(t, len(*captured), 0)
	utils.Equal(t, len(*notifications), 1)
	utils.Equal(t, (*notifications)[0].Type, events.EventError)
}

func TestPanelService_Mutations_Rebroadcast(t *testing.T) {
	captured := capturePayloads(t)
	panel, settings, _ := newPanelFixture(t)

	panel.SetModel("gemini-2.5-pro")
	panel.SetAlwaysUseGenerated(true)
	panel.AddWorkspaceRoot("/home/dev/projects")

	utils.Equal(t, len(*captured), 3)
	utils.Equal(t, len(settings.ModelSets), 1)
	utils.Equal(t, len(settings.AlwaysSets), 1)
	utils.Equal(t, len(settings.RootsAdded), 1)
}

func TestPanelService_TemplateLifecycle(t *testing.T) {
	captured := capturePayloads(t)
	panel, _, templates := newPanelFixture(t)

	tmpl := panel.CreateTemplate("Conventional", "Write a conventional commit.")
	if tmpl == nil {
		t.Fatal("expected a created template")
	}

	updated := panel.UpdateTemplate(tmpl.ID, "Renamed", "")
	utils.Equal(t, updated.Name, "Renamed")

	panel.DeleteTemplate(tmpl.ID)
	utils.Equal(t, len(templates.Templates), 0)

	// Each lifecycle step pushes a fresh snapshot.
	utils.Equal(t, len(*captured), 3)
}
