package client

import (
	"embed"
	"strings"
)

// embeddedPrompts holds the built-in prompt templates so packaged executables
// can load them without needing access to the source tree.
//
//go:embed prompts/*.txt
var embeddedPrompts embed.FS

// DefaultCommitPrompt returns the built-in instruction text used when the
// user has configured neither a prompt override nor a default template.
func DefaultCommitPrompt() string {
	data, err := embeddedPrompts.ReadFile("prompts/commit_default.txt")
	if err != nil {
		// The asset is compiled in; a read failure means a broken build.
		panic("missing embedded commit prompt: " + err.Error())
	}
	return strings.TrimRight(string(data), "\n")
}
