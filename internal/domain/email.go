package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// LoginCodeEmailData holds data for the passwordless login code email.
type LoginCodeEmailData struct {
	Email            string
	Code             string
	ExpiresInMinutes int
}

// AppLinkEmailData holds data for the "your app is ready" email sent to the
// organizer after generating the attendee app.
type AppLinkEmailData struct {
	Email     string
	EventName string
	AppURL    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendLoginCode(ctx context.Context, data *LoginCodeEmailData) error
	SendAppLink(ctx context.Context, data *AppLinkEmailData) error
}

// QRGenerator renders a PNG QR code for the given content.
type QRGenerator interface {
	PNG(content string, size int) ([]byte, error)
}
