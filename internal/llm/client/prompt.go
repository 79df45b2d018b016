package client

// diffPreamble sits between the instruction template and the fenced diff.
// The exact textual form is a compatibility contract: saved templates were
// written against it, so no trimming or escaping happens here.
const diffPreamble = "\n\nHere are the diffs:\n```diff\n"

// BuildPrompt assembles the full prompt sent to the model from the
// instruction template and the staged diff text.
func BuildPrompt(template, diff string) string {
	return template + diffPreamble + diff + "\n```"
}
