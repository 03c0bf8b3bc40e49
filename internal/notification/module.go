// Package notification provides event handlers for sending emails in
// response to domain events. This module subscribes to events and inverts
// the dependency: domain modules never touch email providers or templates.
package notification

import (
	"context"
	"strings"

	"zerowaste_map_backend/internal/email"
	"zerowaste_map_backend/internal/events"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

// Module handles domain events that trigger notifications.
type Module struct {
	sender email.Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, cfg: cfg, log: log}
}

// RegisterHandlers subscribes the module to the location lifecycle events.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.LocationSubmitted{}.EventName(), m)
	bus.Subscribe(events.LocationApproved{}.EventName(), m)
	bus.Subscribe(events.LocationRejected{}.EventName(), m)
}

// Handle routes events to the appropriate email.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LocationSubmitted:
		return m.handleSubmitted(ctx, e)
	case events.LocationApproved:
		return m.handleApproved(ctx, e)
	case events.LocationRejected:
		return m.handleRejected(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleSubmitted(ctx context.Context, e events.LocationSubmitted) error {
	if err := m.sender.SendSubmissionReceivedEmail(ctx, e.SubmitterEmail, e.Name); err != nil {
		m.log.Error("failed to send submission confirmation", "locationId", e.LocationID, "error", err)
		return err
	}

	adminEmail := m.cfg.GetAdminNotifyAddress()
	if adminEmail == "" {
		return nil
	}
	moderationURL := m.buildURL("/admin/locations")
	if err := m.sender.SendAdminNewSubmissionEmail(ctx, adminEmail, e.Name, e.Category, moderationURL); err != nil {
		m.log.Error("failed to send admin notification", "locationId", e.LocationID, "error", err)
		return err
	}

	return nil
}

func (m *Module) handleApproved(ctx context.Context, e events.LocationApproved) error {
	mapURL := m.buildURL("/karte")
	if err := m.sender.SendLocationApprovedEmail(ctx, e.SubmitterEmail, e.Name, mapURL); err != nil {
		m.log.Error("failed to send approval email", "locationId", e.LocationID, "error", err)
		return err
	}
	return nil
}

func (m *Module) handleRejected(ctx context.Context, e events.LocationRejected) error {
	if err := m.sender.SendLocationRejectedEmail(ctx, e.SubmitterEmail, e.Name, e.Reason); err != nil {
		m.log.Error("failed to send rejection email", "locationId", e.LocationID, "error", err)
		return err
	}
	return nil
}

func (m *Module) buildURL(path string) string {
	return strings.TrimRight(m.cfg.GetAppBaseURL(), "/") + path
}

var _ events.Handler = (*Module)(nil)
