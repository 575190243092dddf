package notify

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

const (
	customerCreatedSubject  = "New Customer Added - APEX GLITCH CRM"
	documentUploadedSubject = "New Document Uploaded - APEX GLITCH CRM"
)

// Mailer is the SMTP implementation of [Notifier]. Every event becomes a
// single HTML email to the configured admin address.
type Mailer struct {
	client     *mail.Client
	from       string
	adminEmail string
	logger     *logger.Logger
}

// NewMailer builds a Mailer from the mail configuration. The SMTP connection
// is established per message, not at construction time.
func NewMailer(cfg config.Mail, logger *logger.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating mail client: %w", err)
	}

	logger.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating mailer")
	return &Mailer{
		client:     client,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		logger:     logger,
	}, nil
}

// CustomerCreated emails the admin about a newly created customer record.
func (m *Mailer) CustomerCreated(ctx context.Context, customer models.Customer) error {
	data := customerCreatedData{
		Name:    customer.Name(),
		Email:   customer.Email(),
		Phone:   stringField(customer, "phone"),
		Company: stringField(customer, "company"),
		Notes:   stringField(customer, "notes"),
	}

	var body bytes.Buffer
	if err := customerCreatedTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("error rendering customer notification: %w", err)
	}

	return m.send(ctx, customerCreatedSubject, body.String())
}

// DocumentUploaded emails the admin about a freshly uploaded document.
func (m *Mailer) DocumentUploaded(ctx context.Context, customer models.Customer, document models.Document) error {
	data := documentUploadedData{
		CustomerName:     customer.Name(),
		CustomerEmail:    customer.Email(),
		OriginalFilename: document.OriginalFilename,
		FileType:         document.FileType,
		FileSize:         document.FileSize,
		Category:         document.Category,
		Description:      document.Description,
	}

	var body bytes.Buffer
	if err := documentUploadedTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("error rendering document notification: %w", err)
	}

	return m.send(ctx, documentUploadedSubject, body.String())
}

func (m *Mailer) send(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("error setting mail sender: %w", err)
	}
	if err := msg.To(m.adminEmail); err != nil {
		return fmt.Errorf("error setting mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}

	return nil
}

func stringField(customer models.Customer, column string) string {
	if value, ok := customer[column].(string); ok {
		return value
	}
	return ""
}
