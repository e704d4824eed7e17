// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"
	"safari/internal/config"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/pkg/utils"
)

// MailStatus tells a caller whether a notification left the process.
type MailStatus string

const (
	MailSent MailStatus = "sent"
	// MailRecorded means no transport is configured; the message was
	// rendered and logged but not delivered. It is not an error.
	MailRecorded MailStatus = "recorded"
)

type IMailService interface {
	NotifyBooking(ctx context.Context, booking db_models.Booking, itineraryTitle string) (MailStatus, error)
	NotifyVolunteer(ctx context.Context, volunteer db_models.Volunteer) (MailStatus, error)
	NotifyDonation(ctx context.Context, donation db_models.Donation) (MailStatus, error)
	SendDonationInquiry(ctx context.Context, req request_models.DonationInquiryRequest) (MailStatus, error)
	Enabled() bool
}

// MailSettings holds addressing and branding.
type MailSettings struct {
	From           string
	ReservationsTo string
	SalesTo        string
	AppName        string
	Location       *time.Location
}

func MailSettingsFromConfig(cfg config.Config) MailSettings {
	return MailSettings{
		From:           cfg.MailFrom,
		ReservationsTo: cfg.MailReservationsTo,
		SalesTo:        cfg.MailSalesTo,
		AppName:        cfg.AppName,
		Location:       utils.LoadLocation(cfg.Timezone),
	}
}

type mailService struct {
	settings  MailSettings
	transport MailTransport
	log       *zap.Logger
	htmlTpl   *template.Template
	textTpl   *texttemplate.Template
	now       func() time.Time
}

// NewMailService renders notifications and hands them to transport.
// A nil transport puts the service in recorded mode.
func NewMailService(settings MailSettings, transport MailTransport, log *zap.Logger) IMailService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &mailService{
		settings:  settings,
		transport: transport,
		log:       log.Named("mail"),
		htmlTpl:   template.Must(template.New("notificationHTML").Parse(notificationHTMLTemplate)),
		textTpl:   texttemplate.Must(texttemplate.New("notificationText").Parse(notificationTextTemplate)),
		now:       time.Now,
	}
}

func (s *mailService) Enabled() bool {
	return s.transport != nil
}

// ------------------- Public API -------------------

func (s *mailService) NotifyBooking(ctx context.Context, b db_models.Booking, itineraryTitle string) (MailStatus, error) {
	itinerary := "#" + strconv.FormatUint(uint64(b.ItineraryID), 10)
	if itineraryTitle != "" {
		itinerary = itineraryTitle + " (" + itinerary + ")"
	}
	data := EmailData{
		Title: "New booking request from " + b.Name,
		Intro: "A new booking request has been submitted through the website.",
		Fields: []EmailField{
			{Label: "Name", Value: b.Name},
			{Label: "Email", Value: b.Email},
			{Label: "Phone", Value: joinNonEmpty(" ", b.CountryCode, b.Phone)},
			{Label: "Itinerary", Value: itinerary},
			{Label: "Preferred dates", Value: b.PreferredDates},
			{Label: "Adults", Value: strconv.Itoa(b.NumberOfAdults)},
			{Label: "Kids", Value: strconv.Itoa(b.NumberOfKids)},
			{Label: "Toddlers", Value: strconv.Itoa(b.NumberOfToddlers)},
		},
		Message:     b.Message,
		SubmittedAt: b.CreatedAt,
	}
	return s.deliver(ctx, "booking", s.settings.ReservationsTo, b.Email, data)
}

func (s *mailService) NotifyVolunteer(ctx context.Context, v db_models.Volunteer) (MailStatus, error) {
	data := EmailData{
		Title: "New volunteer application from " + v.Name,
		Intro: "Someone would like to volunteer with us.",
		Fields: []EmailField{
			{Label: "Name", Value: v.Name},
			{Label: "Role", Value: v.Role},
			{Label: "Availability", Value: v.Availability},
			{Label: "Skills", Value: joinNonEmpty(", ", v.Skills...)},
			{Label: "Status", Value: v.Status},
		},
		Message:     v.Description,
		SubmittedAt: v.CreatedAt,
	}
	return s.deliver(ctx, "volunteer", s.settings.SalesTo, "", data)
}

func (s *mailService) NotifyDonation(ctx context.Context, d db_models.Donation) (MailStatus, error) {
	fields := []EmailField{
		{Label: "Name", Value: d.Name},
		{Label: "Email", Value: d.Email},
		{Label: "Amount", Value: fmt.Sprintf("$%.2f", d.Amount)},
		{Label: "Donation type", Value: d.DonationType},
	}
	if d.ProjectID != nil {
		fields = append(fields, EmailField{Label: "Project", Value: "#" + strconv.FormatUint(uint64(*d.ProjectID), 10)})
	}
	data := EmailData{
		Title:       "New donation pledge from " + d.Name,
		Intro:       "A donation has been recorded.",
		Fields:      fields,
		SubmittedAt: d.CreatedAt,
	}
	return s.deliver(ctx, "donation", s.settings.SalesTo, d.Email, data)
}

func (s *mailService) SendDonationInquiry(ctx context.Context, req request_models.DonationInquiryRequest) (MailStatus, error) {
	title := req.Title
	if title == "" {
		title = "General donation"
	}
	data := EmailData{
		Title: "Donation inquiry: " + title,
		Intro: "A visitor asked about supporting one of our projects.",
		Fields: []EmailField{
			{Label: "Email", Value: req.Email},
			{Label: "Donation type", Value: req.DonationType},
			{Label: "Project", Value: req.Title},
		},
		Message:     req.Message,
		SubmittedAt: s.now(),
	}
	return s.deliver(ctx, "donation_inquiry", s.settings.SalesTo, req.Email, data)
}

func (s *mailService) deliver(ctx context.Context, event, to, replyTo string, data EmailData) (MailStatus, error) {
	msg, err := s.render(to, replyTo, data)
	if err != nil {
		return "", fmt.Errorf("render %s email: %w", event, err)
	}

	if s.transport == nil {
		s.log.Info("mail transport not configured; message recorded",
			zap.String("event", event),
			zap.String("to", to),
			zap.String("subject", msg.Subject),
		)
		return MailRecorded, nil
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("%w: %s via %s: %w", utils.ErrMailDelivery, event, s.transport.Name(), err)
	}
	s.log.Info("mail sent",
		zap.String("event", event),
		zap.String("transport", s.transport.Name()),
		zap.String("to", to),
	)
	return MailSent, nil
}

// ------------------- Rendering -------------------

type EmailField struct {
	Label string
	Value string
}

type EmailData struct {
	Title       string
	Intro       string
	Fields      []EmailField
	Message     string
	SubmittedAt time.Time
	Submitted   string
	AppName     string
	Year        int
}

func (s *mailService) render(to, replyTo string, data EmailData) (OutgoingMail, error) {
	if data.SubmittedAt.IsZero() {
		data.SubmittedAt = s.now()
	}
	data.Submitted = utils.FormatDisplayIn(data.SubmittedAt, s.settings.Location)
	data.AppName = s.settings.AppName
	data.Year = data.SubmittedAt.In(s.settings.Location).Year()

	visible := data.Fields[:0:0]
	for _, f := range data.Fields {
		if f.Value != "" {
			visible = append(visible, f)
		}
	}
	data.Fields = visible

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return OutgoingMail{}, err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return OutgoingMail{}, err
	}
	return OutgoingMail{
		From:    s.settings.From,
		To:      to,
		ReplyTo: replyTo,
		Subject: data.Title,
		HTML:    hb.String(),
		Text:    tb.String(),
	}, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var b bytes.Buffer
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p)
	}
	return b.String()
}
