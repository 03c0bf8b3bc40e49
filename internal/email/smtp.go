package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendSubmissionReceivedEmail(ctx context.Context, toEmail, locationName string) error {
	content, err := renderEmailTemplate("submission_received.html", submissionReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "Vorschlag erhalten",
			Heading: "Danke für deinen Vorschlag!",
		},
		LocationName: locationName,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectSubmissionReceivedFmt, locationName), content)
}

func (s *SMTPSender) SendLocationApprovedEmail(ctx context.Context, toEmail, locationName, mapURL string) error {
	content, err := renderEmailTemplate("location_approved.html", locationApprovedEmailData{
		baseEmailData: baseEmailData{
			Title:    "Eintrag freigegeben",
			Heading:  "Dein Ort ist auf der Karte",
			CTALabel: "Zur Karte",
			CTAURL:   mapURL,
		},
		LocationName: locationName,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectLocationApprovedFmt, locationName), content)
}

func (s *SMTPSender) SendLocationRejectedEmail(ctx context.Context, toEmail, locationName, reason string) error {
	content, err := renderEmailTemplate("location_rejected.html", locationRejectedEmailData{
		baseEmailData: baseEmailData{
			Title:   "Vorschlag abgelehnt",
			Heading: "Dein Vorschlag konnte nicht übernommen werden",
		},
		LocationName: locationName,
		Reason:       reason,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectLocationRejectedFmt, locationName), content)
}

func (s *SMTPSender) SendAdminNewSubmissionEmail(ctx context.Context, toEmail, locationName, category, moderationURL string) error {
	content, err := renderEmailTemplate("admin_new_submission.html", adminNewSubmissionEmailData{
		baseEmailData: baseEmailData{
			Title:    "Neuer Karteneintrag",
			Heading:  "Neuer Eintrag wartet auf Freigabe",
			CTALabel: "Zur Moderation",
			CTAURL:   moderationURL,
		},
		LocationName: locationName,
		Category:     category,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectAdminNewSubmission, content)
}
