package models

// OutcomeKind tags the terminal result of one generate run.
type OutcomeKind string

const (
	OutcomeSuccess       OutcomeKind = "success"
	OutcomeNoChanges     OutcomeKind = "noChanges"
	OutcomeUserCancelled OutcomeKind = "userCancelled"
	OutcomeFailure       OutcomeKind = "failure"
)

// FailureKind classifies a terminal failure for the notification layer.
type FailureKind string

const (
	FailMissingCredential   FailureKind = "missingCredential"
	FailNoWorkspace         FailureKind = "noWorkspace"
	FailNoRepositoriesFound FailureKind = "noRepositoriesFound"
	FailNotARepository      FailureKind = "notARepository"
	FailToolFailure         FailureKind = "toolFailure"
	FailGenerationBlocked   FailureKind = "generationBlocked"
	FailAuthInvalid         FailureKind = "authInvalid"
	FailQuotaExceeded       FailureKind = "quotaExceeded"
	FailOtherAPIError       FailureKind = "otherApiError"
	FailSettingsPersist     FailureKind = "settingsPersistFailure"
)

// WorkflowOutcome is produced exactly once per orchestrated run.
type WorkflowOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message,omitempty"`
	Failure FailureKind `json:"failure,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}
