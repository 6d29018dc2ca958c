package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/neuralink-ai/site-backend/internal/config"
	"github.com/neuralink-ai/site-backend/internal/events"
)

// Publisher forwards serialized events to an external channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  Publisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, publisher Publisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventConsultationSubmitted, n.handleConsultationSubmitted)
	n.dispatcher.Subscribe(events.EventServiceCreated, n.handleCatalogChanged)
	n.dispatcher.Subscribe(events.EventServiceUpdated, n.handleCatalogChanged)
	n.dispatcher.Subscribe(events.EventServiceDeleted, n.handleCatalogChanged)
}

func (n *NotificationService) handleConsultationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationSubmitted", zap.Int("request_id", event.EntityID), zap.Any("payload", event.Payload))
	return n.forward(ctx, event)
}

func (n *NotificationService) handleCatalogChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("CatalogChanged",
		zap.String("event_type", string(event.Type)),
		zap.Int("service_id", event.EntityID))
	return n.forward(ctx, event)
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil || strings.TrimSpace(n.cfg.Channel) == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := n.publisher.Publish(ctx, n.cfg.Channel, body); err != nil {
		n.logger.Warn("forward event failed",
			zap.String("channel", n.cfg.Channel),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}
	n.logger.Debug("event forwarded",
		zap.String("channel", n.cfg.Channel),
		zap.String("event_id", event.ID))
	return nil
}
