package serviceimpl

import (
	"context"

	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

// publishEvent fans out a board event when a publisher is wired. Failures
// are logged and swallowed; mutations never fail on notification.
func publishEvent(ctx context.Context, events ports.EventPublisher, event *ports.BoardEvent) {
	if events == nil {
		return
	}
	if err := events.PublishBoardEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish board event",
			"type", event.Type,
			"board_id", event.BoardID,
			"error", err,
		)
	}
}
