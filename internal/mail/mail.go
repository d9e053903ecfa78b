package mail

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	ReplyTo        string        `mapstructure:"reply_to"`
	VendorEmail    string        `mapstructure:"vendor_email"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
}

type Mailer struct {
	cli            dependency.Sender
	mailRepository dependency.Mail
	c              *Config
	ctx            context.Context
	cancel         context.CancelFunc
	templates      map[string]*template.Template
}

func New(c *Config, mailRepository dependency.Mail) (dependency.Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: missing api key")
	}
	return newMailer(c, sendgrid.NewSendClient(c.APIKey), mailRepository)
}

func newMailer(c *Config, cli dependency.Sender, mailRepository dependency.Mail) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" || c.VendorEmail == "" {
		return nil, fmt.Errorf("incomplete config: from %q <%s>, vendor <%s>", c.FromName, c.FromEmail, c.VendorEmail)
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}

	m := &Mailer{
		cli:            cli,
		mailRepository: mailRepository,
		c:              c,
		templates:      make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		tmpl, err := template.ParseFS(templatesFS, filepath.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}

		m.templates[entry.Name()] = tmpl
	}

	for tn := range templateSubjects {
		if _, ok := m.templates[tn]; !ok {
			return fmt.Errorf("template not found: %v", tn)
		}
	}

	return nil
}

func (m *Mailer) buildSendMailRequest(to, tn string, data any) (*entity.SendEmailRequest, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", tn)
	}

	subject, ok := templateSubjects[tn]
	if !ok {
		return nil, fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	replyTo := m.c.ReplyTo
	if replyTo == "" {
		replyTo = m.c.FromEmail
	}

	return &entity.SendEmailRequest{
		From:    m.c.FromEmail,
		To:      to,
		HTML:    body.String(),
		Subject: subject,
		ReplyTo: replyTo,
	}, nil
}

// toSendGrid converts a stored request into a sendgrid v3 message.
func (m *Mailer) toSendGrid(ser *entity.SendEmailRequest) (*sgmail.SGMailV3, error) {
	if ser.To == "" || ser.Subject == "" || ser.HTML == "" {
		return nil, gerr.BadMailRequest
	}
	from := sgmail.NewEmail(m.c.FromName, ser.From)
	msg := sgmail.NewSingleEmail(from, ser.Subject, sgmail.NewEmail("", ser.To), "", ser.HTML)
	if ser.ReplyTo != "" {
		msg.SetReplyTo(sgmail.NewEmail("", ser.ReplyTo))
	}
	return msg, nil
}

func (m *Mailer) send(ctx context.Context, ser *entity.SendEmailRequest) error {
	msg, err := m.toSendGrid(ser)
	if err != nil {
		return err
	}
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}

func (m *Mailer) sendWithInsert(ctx context.Context, rep dependency.Repository, ser *entity.SendEmailRequest) error {
	id, err := rep.Mail().AddMail(ctx, ser)
	if err != nil {
		return fmt.Errorf("error inserting email: %w", err)
	}

	if err := m.send(ctx, ser); err != nil {
		// left queued for the worker
		slog.Default().ErrorContext(ctx, "can't send mail",
			slog.String("err", err.Error()),
			slog.String("subject", ser.Subject),
		)
		if !errors.Is(err, gerr.MailApiLimitReached) {
			if err := rep.Mail().MarkFailed(ctx, id, err.Error()); err != nil {
				return fmt.Errorf("error marking email failed: %w", err)
			}
		}
		return nil
	}

	if err := rep.Mail().MarkSent(ctx, id); err != nil {
		return fmt.Errorf("error updating email: %w", err)
	}

	return nil
}
