package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/resend/resend-go/v2"
	"safari/internal/config"
)

// OutgoingMail is a fully rendered message ready for a transport.
type OutgoingMail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

type MailTransport interface {
	Send(ctx context.Context, msg OutgoingMail) error
	Name() string
}

// NewMailTransport picks Resend when an API key is set, SMTP when a host
// and password are set, and nil (recorded mode) otherwise.
func NewMailTransport(cfg config.Config) MailTransport {
	switch {
	case cfg.ResendAPIKey != "":
		return NewResendTransport(cfg.ResendAPIKey)
	case cfg.SMTP.Host != "" && cfg.SMTP.Password != "":
		return NewSMTPTransport(cfg.SMTP)
	default:
		return nil
	}
}

// ------------------- Resend -------------------

type resendTransport struct {
	client *resend.Client
}

func NewResendTransport(apiKey string) MailTransport {
	return &resendTransport{client: resend.NewClient(apiKey)}
}

func (t *resendTransport) Name() string { return "resend" }

func (t *resendTransport) Send(ctx context.Context, msg OutgoingMail) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}
	_, err := t.client.Emails.SendWithContext(ctx, params)
	return err
}

// ------------------- SMTP -------------------

type smtpTransport struct {
	cfg config.SMTPConfig
}

func NewSMTPTransport(cfg config.SMTPConfig) MailTransport {
	return &smtpTransport{cfg: cfg}
}

func (t *smtpTransport) Name() string { return "smtp" }

func (t *smtpTransport) Send(ctx context.Context, msg OutgoingMail) error {
	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}

	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	tlsCfg := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	if t.cfg.Port == 465 {
		// SMTPS: implicit TLS from the first byte.
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if t.cfg.Port != 465 {
		ok, _ := c.Extension("STARTTLS")
		if !ok {
			return fmt.Errorf("smtp server %s does not support STARTTLS", t.cfg.Host)
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	username := t.cfg.Username
	if username == "" {
		username = from.Address
	}
	if err = c.Auth(smtp.PlainAuth("", username, t.cfg.Password, t.cfg.Host)); err != nil {
		return err
	}
	if err = c.Mail(from.Address); err != nil {
		return err
	}
	if err = c.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(buildMIMEMessage(from, msg, time.Now())); err != nil {
		return err
	}
	return w.Close()
}

// buildMIMEMessage lays out a multipart/alternative message with the plain
// text part first.
func buildMIMEMessage(from *mail.Address, msg OutgoingMail, now time.Time) []byte {
	boundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var b bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&b, format, a...) }

	write("From: %s\r\n", from.String())
	write("To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		write("Reply-To: %s\r\n", msg.ReplyTo)
	}
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", msg.Text)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", msg.HTML)

	write("--%s--\r\n", boundary)
	return b.Bytes()
}
