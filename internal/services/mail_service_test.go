package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/pkg/utils"
)

func testMailSettings() MailSettings {
	return MailSettings{
		From:           "Safari Tours <noreply@safari.test>",
		ReservationsTo: "reservations@safari.test",
		SalesTo:        "sales@safari.test",
		AppName:        "Safari Tours",
		Location:       time.UTC,
	}
}

func TestMailServiceRecordedWithoutTransport(t *testing.T) {
	svc := NewMailService(testMailSettings(), nil, zap.NewNop())

	if svc.Enabled() {
		t.Fatal("service without transport should report disabled")
	}
	status, err := svc.NotifyBooking(context.Background(), db_models.Booking{Name: "Jane", Email: "jane@x.com"}, "")
	if err != nil {
		t.Fatalf("recorded mode must not error: %v", err)
	}
	if status != MailRecorded {
		t.Fatalf("expected recorded, got %q", status)
	}
}

func TestMailServiceBookingRouting(t *testing.T) {
	transport := &fakeTransport{}
	svc := NewMailService(testMailSettings(), transport, zap.NewNop())

	booking := db_models.Booking{
		Name:           "Jane <script>",
		Email:          "jane@x.com",
		ItineraryID:    2,
		PreferredDates: "Jun 1 - Jun 5",
		NumberOfAdults: 2,
		Message:        "Vegetarian meals please",
	}
	booking.CreatedAt = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

	status, err := svc.NotifyBooking(context.Background(), booking, "Serengeti Explorer")
	if err != nil || status != MailSent {
		t.Fatalf("expected sent, got %q %v", status, err)
	}

	sent := transport.messages()
	if len(sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sent))
	}
	msg := sent[0]
	if msg.To != "reservations@safari.test" || msg.ReplyTo != "jane@x.com" {
		t.Fatalf("unexpected routing to=%q reply-to=%q", msg.To, msg.ReplyTo)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("html body must escape submitted values")
	}
	for _, want := range []string{"Serengeti Explorer (#2)", "Jun 1 - Jun 5", "Vegetarian meals please", "Mon, 01 Jun 2026 09:30 UTC"} {
		if !strings.Contains(msg.Text, want) {
			t.Fatalf("text body missing %q:\n%s", want, msg.Text)
		}
	}
}

func TestMailServiceSalesMessages(t *testing.T) {
	transport := &fakeTransport{}
	svc := NewMailService(testMailSettings(), transport, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.NotifyVolunteer(ctx, db_models.Volunteer{Name: "Amina", Role: "Guide", Skills: db_models.StringList{"Swahili", "First aid"}}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}
	if _, err := svc.SendDonationInquiry(ctx, request_models.DonationInquiryRequest{Email: "d@x.com", Title: "School fund"}); err != nil {
		t.Fatalf("inquiry: %v", err)
	}

	sent := transport.messages()
	if len(sent) != 2 {
		t.Fatalf("expected two messages, got %d", len(sent))
	}
	for _, msg := range sent {
		if msg.To != "sales@safari.test" {
			t.Fatalf("expected sales desk, got %q", msg.To)
		}
	}
	if !strings.Contains(sent[0].Text, "Swahili, First aid") {
		t.Fatalf("skills not listed:\n%s", sent[0].Text)
	}
	if sent[1].Subject != "Donation inquiry: School fund" {
		t.Fatalf("unexpected subject %q", sent[1].Subject)
	}
}

func TestMailServiceTransportFailure(t *testing.T) {
	transport := &fakeTransport{err: errors.New("connection refused")}
	svc := NewMailService(testMailSettings(), transport, zap.NewNop())

	_, err := svc.NotifyDonation(context.Background(), db_models.Donation{Name: "A", Email: "a@x.com", Amount: 25})
	if !errors.Is(err, utils.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}
}

func TestBuildMIMEMessageHeaders(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := string(buildMIMEMessage(
		mustParseAddress(t, "Safari Tours <noreply@safari.test>"),
		OutgoingMail{To: "sales@safari.test", ReplyTo: "d@x.com", Subject: "Hakuna matata ✓", HTML: "<p>hi</p>", Text: "hi"},
		now,
	))

	for _, want := range []string{
		"To: sales@safari.test\r\n",
		"Reply-To: d@x.com\r\n",
		"Subject: =?utf-8?q?",
		"Content-Type: multipart/alternative;",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message missing %q:\n%s", want, raw)
		}
	}
}

func mustParseAddress(t *testing.T, raw string) *mail.Address {
	t.Helper()
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		t.Fatalf("parse address: %v", err)
	}
	return addr
}
