package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt PanelEvent) {}

// EmitPayload carries structured payloads (settings snapshots, commit
// input routing) that are not PanelEvents. Swappable for tests like Emit.
var EmitPayload = func(ctx context.Context, name string, payload any) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt PanelEvent) {
		if evt.RunID == "" {
			if run := RunFromContext(ctx); run != "" {
				evt.RunID = run
			}
		}

		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
	EmitPayload = func(ctx context.Context, name string, payload any) {
		runtime.EventsEmit(ctx, name, payload)
	}
}

func SetCustomPayloadEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		EmitPayload = func(context.Context, string, any) {}
		return
	}
	EmitPayload = f
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt PanelEvent)) {
	if f == nil {
		Emit = func(context.Context, string, PanelEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt PanelEvent) {
		if evt.RunID == "" {
			if run := RunFromContext(ctx); run != "" {
				evt.RunID = run
			}
		}
		f(ctx, name, evt)
	}
}
