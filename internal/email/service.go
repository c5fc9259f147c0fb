package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"stagepass/internal/clients/mail"
	"stagepass/internal/observability"
	"text/template"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending buyer-facing emails.
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates.
type TemplateData struct {
	CustomerName string
	ProductName  string
	EventName    string
	DownloadURL  string
	Amount       string
}

// New creates a new EmailService.
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"product_delivery": `
			<html>
				<body>
					<h1>Your purchase is ready!</h1>
					<p>Hi {{.CustomerName}},</p>
					<p>Thank you for your purchase of <strong>{{.ProductName}}</strong> for {{.EventName}}.</p>
					<p>Your download is ready:</p>
					<p><a href="{{.DownloadURL}}" style="background-color: #2563EB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download {{.ProductName}}</a></p>
					<p>This link expires after a limited time. If it stops working, reply to this email and we'll send you a fresh one.</p>
				</body>
			</html>
			`,
			"payment_receipt": `
			<html>
				<body>
					<h1>Payment received</h1>
					<p>Hi {{.CustomerName}},</p>
					<p>We received your payment of {{.Amount}} for <strong>{{.ProductName}}</strong> ({{.EventName}}).</p>
					<p>Your delivery email will follow shortly.</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendDeliveryEmail sends the download link for a purchased product.
func (s *EmailService) SendDeliveryEmail(ctx context.Context, to, customerName, productName, eventName, downloadURL string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "product_delivery"},
		observability.Field{Key: "recipient", Value: to},
		observability.Field{Key: "product_name", Value: productName},
	)

	subject := fmt.Sprintf("Your %s download is ready", productName)

	data := TemplateData{
		CustomerName: customerName,
		ProductName:  productName,
		EventName:    eventName,
		DownloadURL:  downloadURL,
	}

	htmlContent, err := s.renderTemplate("product_delivery", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render product delivery email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send product delivery email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendReceiptEmail sends a payment receipt.
func (s *EmailService) SendReceiptEmail(ctx context.Context, to, customerName, productName, eventName, amount string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "payment_receipt"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Receipt for %s", productName)

	data := TemplateData{
		CustomerName: customerName,
		ProductName:  productName,
		EventName:    eventName,
		Amount:       amount,
	}

	htmlContent, err := s.renderTemplate("payment_receipt", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render payment receipt email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send payment receipt email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendEmail sends a generic email with custom content.
func (s *EmailService) SendEmail(ctx context.Context, to, subject, htmlContent string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "custom"},
		observability.Field{Key: "recipient", Value: to},
	)

	if htmlContent == "" {
		s.logger.Error(ctx, "empty email content", ErrEmptyTemplate)
		return ErrEmptyTemplate
	}

	_, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send custom email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
