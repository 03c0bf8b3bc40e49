// Package email provides transactional email delivery for submission and
// moderation notifications.
package email

import (
	"context"

	"zerowaste_map_backend/platform/config"
)

// Sender delivers the map's transactional emails.
type Sender interface {
	// SendSubmissionReceivedEmail confirms a submission to the visitor.
	SendSubmissionReceivedEmail(ctx context.Context, toEmail, locationName string) error
	// SendLocationApprovedEmail tells the submitter their place is on the map.
	SendLocationApprovedEmail(ctx context.Context, toEmail, locationName, mapURL string) error
	// SendLocationRejectedEmail tells the submitter why their place was declined.
	SendLocationRejectedEmail(ctx context.Context, toEmail, locationName, reason string) error
	// SendAdminNewSubmissionEmail notifies the admin about a pending submission.
	SendAdminNewSubmissionEmail(ctx context.Context, toEmail, locationName, category, moderationURL string) error
}

// NewSender selects the delivery mechanism from configuration. Without SMTP
// settings a no-op sender keeps local development working.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	), nil
}

// NoopSender drops all emails. Used when email delivery is not configured.
type NoopSender struct{}

func (NoopSender) SendSubmissionReceivedEmail(context.Context, string, string) error { return nil }

func (NoopSender) SendLocationApprovedEmail(context.Context, string, string, string) error {
	return nil
}

func (NoopSender) SendLocationRejectedEmail(context.Context, string, string, string) error {
	return nil
}

func (NoopSender) SendAdminNewSubmissionEmail(context.Context, string, string, string, string) error {
	return nil
}

var _ Sender = NoopSender{}
