package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"zerowaste_map_backend/internal/events"
	"zerowaste_map_backend/platform/logger"
)

type testNotificationConfig struct {
	adminEmail string
}

func (c testNotificationConfig) GetAppBaseURL() string         { return "https://karte.example.de/" }
func (c testNotificationConfig) GetAdminNotifyAddress() string { return c.adminEmail }

type testSender struct {
	received      int
	approved      int
	rejected      int
	adminNotified int

	lastApprovedURL string
	lastReason      string
}

func (s *testSender) SendSubmissionReceivedEmail(context.Context, string, string) error {
	s.received++
	return nil
}

func (s *testSender) SendLocationApprovedEmail(_ context.Context, _, _, mapURL string) error {
	s.approved++
	s.lastApprovedURL = mapURL
	return nil
}

func (s *testSender) SendLocationRejectedEmail(_ context.Context, _, _, reason string) error {
	s.rejected++
	s.lastReason = reason
	return nil
}

func (s *testSender) SendAdminNewSubmissionEmail(context.Context, string, string, string, string) error {
	s.adminNotified++
	return nil
}

func newTestModule(adminEmail string) (*Module, *testSender) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{adminEmail: adminEmail}, logger.New("development"))
	return m, sender
}

func TestHandleSubmittedNotifiesVisitorAndAdmin(t *testing.T) {
	m, sender := newTestModule("admin@karte.example.de")

	err := m.Handle(context.Background(), events.LocationSubmitted{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     uuid.New(),
		Name:           "Die Auffüllerei",
		Category:       "unverpackt",
		SubmitterEmail: "laden@example.de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.received != 1 || sender.adminNotified != 1 {
		t.Errorf("expected one confirmation and one admin notice, got %d/%d",
			sender.received, sender.adminNotified)
	}
}

func TestHandleSubmittedSkipsAdminWithoutAddress(t *testing.T) {
	m, sender := newTestModule("")

	err := m.Handle(context.Background(), events.LocationSubmitted{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     uuid.New(),
		Name:           "Die Auffüllerei",
		SubmitterEmail: "laden@example.de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.adminNotified != 0 {
		t.Errorf("no admin address configured, but %d notices sent", sender.adminNotified)
	}
}

func TestHandleApprovedBuildsMapURL(t *testing.T) {
	m, sender := newTestModule("")

	err := m.Handle(context.Background(), events.LocationApproved{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     uuid.New(),
		Name:           "Die Auffüllerei",
		SubmitterEmail: "laden@example.de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.approved != 1 {
		t.Fatalf("expected one approval email, got %d", sender.approved)
	}
	if sender.lastApprovedURL != "https://karte.example.de/karte" {
		t.Errorf("map URL = %q", sender.lastApprovedURL)
	}
}

func TestHandleRejectedForwardsReason(t *testing.T) {
	m, sender := newTestModule("")

	err := m.Handle(context.Background(), events.LocationRejected{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     uuid.New(),
		Name:           "Die Auffüllerei",
		SubmitterEmail: "laden@example.de",
		Reason:         "Adresse nicht auffindbar",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.rejected != 1 || sender.lastReason != "Adresse nicht auffindbar" {
		t.Errorf("rejection email wrong: %d %q", sender.rejected, sender.lastReason)
	}
}

func TestHandleIgnoresUnknownEvents(t *testing.T) {
	m, sender := newTestModule("admin@karte.example.de")

	err := m.Handle(context.Background(), events.LocationEnriched{
		BaseEvent:  events.NewBaseEvent(),
		LocationID: uuid.New(),
		MatchType:  "name_search",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.received+sender.approved+sender.rejected+sender.adminNotified != 0 {
		t.Error("enrichment events must not trigger emails")
	}
}
