package worker

import (
	"go.uber.org/zap"

	"github.com/neuralink-ai/site-backend/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to domain events.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		logger.Warn("notification worker disabled")
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
