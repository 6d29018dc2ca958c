package service

import (
	"context"

	"github.com/neuralink-ai/site-backend/internal/events"
)

// publishEvent notifies subscribers after a write has committed. Delivery is
// best-effort: subscriber errors never fail the request, and the notification
// subscriber logs its own forwarding failures.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, event)
}
