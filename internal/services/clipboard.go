package services

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Clipboard abstracts the host clipboard so workflow tests can observe
// routing without a running webview.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

type runtimeClipboard struct{}

func NewRuntimeClipboard() Clipboard {
	return &runtimeClipboard{}
}

func (runtimeClipboard) SetText(ctx context.Context, text string) error {
	return runtime.ClipboardSetText(ctx, text)
}
