package services

import (
	"context"
	"errors"
	"fmt"

	"gitscribe/internal/events"
	"gitscribe/internal/llm/client"
	"gitscribe/internal/models"
)

// Progress labels shown while a run advances. Cosmetic only; they never
// gate control flow.
const (
	progressLocating   = "Finding git repositories…"
	progressExtracting = "Getting staged changes…"
	progressGenerating = "Generating commit message with Gemini…"
)

// CredentialStore reads the generation credential. Satisfied by
// KeyringService.
type CredentialStore interface {
	GetApiKey() (string, error)
}

// RepositoryFinder extends the locator with live exact-path re-resolution
// used by output routing.
type RepositoryFinder interface {
	RepositoryLocator
	FindByPath(roots []string, repoPath string) (*models.Repository, bool)
}

// WorkflowService sequences one generate run: credential gate, repository
// location, disambiguation, diff extraction, generation and output
// routing. One run produces exactly one terminal outcome. Overlapping runs
// are not serialized; the panel disables its trigger while a run is in
// flight but rapid double-activation can still race, and that is accepted
// for a single-user tool.
type WorkflowService struct {
	context     context.Context
	settings    SettingsService
	templates   TemplateService
	credentials CredentialStore
	locator     RepositoryFinder
	differ      DiffExtractor
	generator   MessageGenerator
	modelCat    ModelService
	history     HistoryService
	prompter    Prompter
	clipboard   Clipboard
	commitSink  CommitInputSink
}

func NewWorkflowService(
	settings SettingsService,
	templates TemplateService,
	credentials CredentialStore,
	locator RepositoryFinder,
	differ DiffExtractor,
	generator MessageGenerator,
	modelCat ModelService,
	history HistoryService,
	prompter Prompter,
	clipboard Clipboard,
	commitSink CommitInputSink,
) *WorkflowService {
	return &WorkflowService{
		settings:    settings,
		templates:   templates,
		credentials: credentials,
		locator:     locator,
		differ:      differ,
		generator:   generator,
		modelCat:    modelCat,
		history:     history,
		prompter:    prompter,
		clipboard:   clipboard,
		commitSink:  commitSink,
	}
}

func (s *WorkflowService) Startup(ctx context.Context) error {
	s.context = ctx
	if s.settings == nil {
		return fmt.Errorf("settings service not configured")
	}
	if s.credentials == nil {
		return fmt.Errorf("credential store not configured")
	}
	if s.locator == nil || s.differ == nil {
		return fmt.Errorf("git service not configured")
	}
	if s.generator == nil {
		return fmt.Errorf("message generator not configured")
	}
	if s.history == nil {
		return fmt.Errorf("history service not configured")
	}
	if s.prompter == nil || s.clipboard == nil {
		return fmt.Errorf("host integration not configured")
	}
	return nil
}

// GenerateCommitMessage runs the full workflow starting from repository
// discovery and disambiguation.
func (s *WorkflowService) GenerateCommitMessage() models.WorkflowOutcome {
	return s.generate("")
}

// GenerateForRepository runs the workflow against one known repository
// path, skipping the picker. The panel's regenerate action calls this
// with the repository the previous message was routed to.
func (s *WorkflowService) GenerateForRepository(repoPath string) models.WorkflowOutcome {
	return s.generate(repoPath)
}

func (s *WorkflowService) generate(repoPath string) models.WorkflowOutcome {
	ctx := events.WithRun(s.context, events.NewRunID())
	defer events.Emit(ctx, events.PanelClearGenerating, events.NewInfo("generation finished"))

	outcome := s.run(ctx, repoPath)
	s.report(ctx, outcome)
	return outcome
}

// run walks the linear state machine and returns the terminal outcome.
// Errors from the collaborators are reclassified here, once, at the
// orchestrator boundary; no step is retried.
func (s *WorkflowService) run(ctx context.Context, repoPath string) models.WorkflowOutcome {
	settings, err := s.settings.Get()
	if err != nil {
		return failure(models.FailSettingsPersist, "Failed to load settings.", err.Error())
	}

	apiKey, err := s.credentials.GetApiKey()
	if err != nil || apiKey == "" {
		return failure(models.FailMissingCredential,
			"Gemini API key is not set. Use \"Set API Key\" first.", "")
	}

	if len(settings.WorkspaceRoots) == 0 {
		return failure(models.FailNoWorkspace,
			"No workspace folders are configured. Add a folder to generate commit messages for.", "")
	}

	repo, outcome := s.resolveRepository(ctx, settings.WorkspaceRoots, repoPath)
	if outcome != nil {
		return *outcome
	}

	s.progress(ctx, progressExtracting)
	diff, err := s.differ.StagedDiff(ctx, repo.Path)
	if err != nil {
		if errors.Is(err, ErrNotARepository) {
			return failure(models.FailNotARepository,
				fmt.Sprintf("%s is not a git repository.", repo.DisplayName), err.Error())
		}
		return failure(models.FailToolFailure, "Failed to read staged changes.", err.Error())
	}
	if diff == "" {
		return models.WorkflowOutcome{Kind: models.OutcomeNoChanges}
	}

	s.progress(ctx, progressGenerating)
	prompt := client.BuildPrompt(s.effectivePrompt(settings), diff)
	message, err := s.generator.Generate(ctx, apiKey, s.resolveModel(settings), prompt)
	if err != nil {
		return classifyGenerationError(err)
	}

	s.history.Record(message)
	events.Emit(ctx, events.PanelHistoryUpdated, events.NewSuccess("history updated"))

	s.routeOutput(ctx, settings, *repo, message)
	return models.WorkflowOutcome{Kind: models.OutcomeSuccess, Message: message}
}

// resolveRepository locates candidate repositories and applies the
// disambiguation policy: zero is terminal, one is auto-selected, several
// go through the picker. Picker cancellation is a distinct non-error
// outcome.
func (s *WorkflowService) resolveRepository(ctx context.Context, roots []string, repoPath string) (*models.Repository, *models.WorkflowOutcome) {
	if repoPath != "" {
		if repo, ok := s.locator.FindByPath(roots, repoPath); ok {
			return repo, nil
		}
		out := failure(models.FailNoRepositoriesFound,
			fmt.Sprintf("Repository %s was not found in the configured folders.", repoPath), "")
		return nil, &out
	}

	repos := s.locator.Locate(roots)
	switch len(repos) {
	case 0:
		out := failure(models.FailNoRepositoriesFound,
			"No git repositories found in the configured folders.", "")
		return nil, &out
	case 1:
		return &repos[0], nil
	default:
		s.progress(ctx, progressLocating)
		picked, err := s.prompter.PickRepository(ctx, repos)
		if err != nil {
			out := failure(models.FailToolFailure, "Repository selection failed.", err.Error())
			return nil, &out
		}
		if picked == nil {
			out := models.WorkflowOutcome{Kind: models.OutcomeUserCancelled}
			return nil, &out
		}
		return picked, nil
	}
}

// effectivePrompt resolves the instruction text for this run: the prompt
// override wins, then the default template's body, then the built-in
// prompt. A default template id that no longer resolves is tolerated.
func (s *WorkflowService) effectivePrompt(settings *models.AppSettings) string {
	if settings.PromptOverride != "" {
		return settings.PromptOverride
	}
	if settings.DefaultTemplateID != "" && s.templates != nil {
		if tmpl, err := s.templates.GetTemplate(settings.DefaultTemplateID); err == nil && tmpl != nil {
			return tmpl.PromptBody
		}
	}
	return client.DefaultCommitPrompt()
}

// resolveModel maps the selected model key to its API name, falling back
// to the catalog default when the setting references an unknown model.
func (s *WorkflowService) resolveModel(settings *models.AppSettings) string {
	if mdl, err := s.modelCat.GetModel(settings.SelectedModel); err == nil {
		return mdl.APIName
	}
	return s.modelCat.DefaultModel().APIName
}

// routeOutput applies the routing policy for a successful generation.
// History has already been recorded; the user's choice here does not
// affect it.
func (s *WorkflowService) routeOutput(ctx context.Context, settings *models.AppSettings, repo models.Repository, message string) {
	if settings.AlwaysUseGenerated {
		s.applyOrCopy(ctx, settings.WorkspaceRoots, repo, message)
		return
	}

	choice, err := s.prompter.ConfirmMessage(ctx, message)
	if err != nil {
		events.Emit(ctx, events.PanelNotify, events.NewWarn(fmt.Sprintf("Could not show the confirmation dialog: %v", err)))
		return
	}
	switch choice {
	case ChoiceUseMessage:
		s.applyOrCopy(ctx, settings.WorkspaceRoots, repo, message)
	case ChoiceCopy:
		s.copyToClipboard(ctx, message)
	case ChoiceCancel:
		// Message stays in history; nothing is routed.
	}
}

// applyOrCopy writes the message into the repository's commit input when
// the repository can be re-located by exact path in the live list, else
// falls back to the clipboard with a distinct warning.
func (s *WorkflowService) applyOrCopy(ctx context.Context, roots []string, repo models.Repository, message string) {
	live, ok := s.locator.FindByPath(roots, repo.Path)
	if ok && s.commitSink != nil {
		if err := s.commitSink.SetCommitMessage(ctx, live.Path, message); err == nil {
			return
		}
	}
	s.copyToClipboard(ctx, message)
	events.Emit(ctx, events.PanelNotify, events.NewWarn(
		"Could not reach the repository's commit input; the message was copied to the clipboard instead."))
}

func (s *WorkflowService) copyToClipboard(ctx context.Context, message string) {
	if err := s.clipboard.SetText(ctx, message); err != nil {
		events.Emit(ctx, events.PanelNotify, events.NewError(fmt.Sprintf("Failed to copy to clipboard: %v", err)))
	}
}

// CopyLastCommitMessage puts the most recent history entry on the
// clipboard.
func (s *WorkflowService) CopyLastCommitMessage() {
	message, ok := s.history.MostRecent()
	if !ok {
		events.Emit(s.context, events.PanelNotify, events.NewInfo("No commit messages have been generated yet."))
		return
	}
	s.copyToClipboard(s.context, message)
}

// ShowCommitHistory returns the session's generated messages, newest
// first.
func (s *WorkflowService) ShowCommitHistory() []string {
	return s.history.Entries()
}

func (s *WorkflowService) progress(ctx context.Context, label string) {
	events.Emit(ctx, events.PanelProgress, events.NewInfo(label))
}

// report surfaces the terminal outcome as at most one notification.
// NoChanges is informational; UserCancelled is silent.
func (s *WorkflowService) report(ctx context.Context, outcome models.WorkflowOutcome) {
	switch outcome.Kind {
	case models.OutcomeSuccess:
		events.Emit(ctx, events.PanelNotify, events.NewSuccess("Commit message generated."))
	case models.OutcomeNoChanges:
		events.Emit(ctx, events.PanelNotify, events.NewInfo("There are no staged changes to describe."))
	case models.OutcomeUserCancelled:
		// Silent termination.
	case models.OutcomeFailure:
		events.Emit(ctx, events.PanelNotify, events.NewError(outcome.Message))
	}
}

func failure(kind models.FailureKind, message, detail string) models.WorkflowOutcome {
	return models.WorkflowOutcome{
		Kind:    models.OutcomeFailure,
		Failure: kind,
		Message: message,
		Detail:  detail,
	}
}

// classifyGenerationError maps generator errors onto the taxonomy. The
// substring inspection itself lives next to the API call; only the
// outcome mapping happens here.
func classifyGenerationError(err error) models.WorkflowOutcome {
	var blocked *client.BlockedError
	switch {
	case errors.As(err, &blocked):
		return failure(models.FailGenerationBlocked,
			fmt.Sprintf("Gemini blocked the generation: %s", blocked.Reason), blocked.Reason)
	case errors.Is(err, client.ErrAuthInvalid):
		return failure(models.FailAuthInvalid,
			"The configured Gemini API key is not valid. Update it in the panel.", err.Error())
	case errors.Is(err, client.ErrQuotaExceeded):
		return failure(models.FailQuotaExceeded,
			"Gemini API quota exceeded. Try again later.", err.Error())
	default:
		return failure(models.FailOtherAPIError,
			fmt.Sprintf("Commit message generation failed: %v", err), err.Error())
	}
}
