package adapter

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"github.com/wneessen/go-mail"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	subjectTrackingConfirmation = "Your Product Tracking Has Begun!"
	subjectPriceAlert           = "Price Drop Alert: %s"

	implicitTLSPort = 465
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"price":    formatPrice,
	"greeting": greeting,
}).ParseFS(templateFS, "templates/*.html"))

var pricePrinter = message.NewPrinter(language.English)

// formatPrice groups thousands and drops the fraction of whole prices.
func formatPrice(v float64) string {
	if v == math.Trunc(v) {
		return pricePrinter.Sprintf("%.0f", v)
	}
	return pricePrinter.Sprintf("%.2f", v)
}

func greeting(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return name
}

// sender is the part of *mail.Client the mailer uses.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailer struct {
	client sender
	from   string

	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that delivers through the relay in cfg.
// Port 465 uses implicit TLS, any other port negotiates STARTTLS when the
// relay offers it.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Port == implicitTLSPort {
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

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return newSMTPMailer(client, cfg.Sender(), logger), nil
}

func newSMTPMailer(client sender, from string, logger *logger.Logger) *smtpMailer {
	return &smtpMailer{client: client, from: from, logger: logger}
}

func (m *smtpMailer) SendTrackingConfirmation(ctx context.Context, msg models.TrackingConfirmation) error {
	return m.send(ctx, msg.To, subjectTrackingConfirmation, "tracking_confirmation.html", msg)
}

func (m *smtpMailer) SendPriceAlert(ctx context.Context, msg models.PriceAlert) error {
	return m.send(ctx, msg.To, fmt.Sprintf(subjectPriceAlert, msg.ProductName), "price_alert.html", msg)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, tmpl string, data any) error {
	log := logger.FromContext(ctx).With().Str("func", "*smtpMailer.send").Str("template", tmpl).Logger()

	msg, err := m.compose(to, subject, tmpl, data)
	if err != nil {
		log.Err(err).Msg("error composing message")
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Msg("error sending message")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	log.Debug().Msg("message sent")
	return nil
}

func (m *smtpMailer) compose(to, subject, tmpl string, data any) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("error setting sender %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRecipient, to, err)
	}
	msg.Subject(subject)

	t := templates.Lookup(tmpl)
	if t == nil {
		return nil, fmt.Errorf("unknown mail template %q", tmpl)
	}
	if err := msg.SetBodyHTMLTemplate(t, data); err != nil {
		return nil, fmt.Errorf("error rendering %s: %w", tmpl, err)
	}

	return msg, nil
}
