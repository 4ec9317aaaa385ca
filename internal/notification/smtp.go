package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/dacaceros97/mentorias-backend/config"

	"github.com/wneessen/go-mail"
)

type endpoint struct {
	host string
	port int
}

// well-known provider identifiers accepted in mail.service
var providers = map[string]endpoint{
	"gmail":      {"smtp.gmail.com", 465},
	"outlook":    {"smtp-mail.outlook.com", 587},
	"hotmail":    {"smtp-mail.outlook.com", 587},
	"outlook365": {"smtp.office365.com", 587},
	"yahoo":      {"smtp.mail.yahoo.com", 465},
	"icloud":     {"smtp.mail.me.com", 587},
	"zoho":       {"smtp.zoho.com", 465},
	"sendgrid":   {"smtp.sendgrid.net", 587},
	"mailgun":    {"smtp.mailgun.org", 465},
	"mailtrap":   {"sandbox.smtp.mailtrap.io", 2525},
}

// resolveEndpoint prefers an explicit host/port and falls back to the provider table.
func resolveEndpoint(cfg config.MailConfig) (endpoint, error) {
	ep := endpoint{host: cfg.Host, port: cfg.Port}
	if ep.host == "" {
		known, ok := providers[strings.ToLower(strings.TrimSpace(cfg.Service))]
		if !ok {
			return endpoint{}, fmt.Errorf("unknown mail service %q", cfg.Service)
		}
		ep.host = known.host
		if ep.port == 0 {
			ep.port = known.port
		}
	}
	if ep.port == 0 {
		ep.port = 587
	}
	return ep, nil
}

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	from string
	host string
	opts []mail.Option
}

// NewSMTPSender builds a sender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	ep, err := resolveEndpoint(cfg)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{mail.WithPort(ep.port)}
	if ep.port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPSender{from: cfg.Sender(), host: ep.host, opts: opts}, nil
}

// Send dials the relay and delivers msg. A client is built per message so workers never share a connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	if msg.ID != "" {
		m.SetMessageIDWithValue(msg.ID)
	}

	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
