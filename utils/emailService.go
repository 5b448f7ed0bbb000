package utils

import (
	"context"
	"fmt"
	"html"

	"lms/config"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is one outgoing message to a single recipient
type Email struct {
	ToEmail string
	ToName  string
	Subject string
	HTML    string
}

// Notifier delivers emails
type Notifier interface {
	Send(ctx context.Context, email Email) error
}

// Mailer is the notifier used by the HTTP handlers and the release scheduler
var Mailer Notifier = LogNotifier{}

// NewNotifier returns a SendGrid notifier when an API key is configured,
// otherwise one that only logs
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.SendgridAPIKey == "" {
		log.Info().Msg("SENDGRID_API_KEY not set, emails will only be logged")
		return LogNotifier{}
	}
	return &SendgridNotifier{client: sendgrid.NewSendClient(cfg.SendgridAPIKey), sender: cfg.EmailSender}
}

type SendgridNotifier struct {
	client *sendgrid.Client
	sender string
}

func (n *SendgridNotifier) Send(ctx context.Context, email Email) error {
	from := mail.NewEmail("LMS", n.sender)
	to := mail.NewEmail(email.ToName, email.ToEmail)
	message := mail.NewSingleEmail(from, email.Subject, to, email.Subject, email.HTML)

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status=%d body=%s", resp.StatusCode, resp.Body)
	}
	log.Debug().Str("to", email.ToEmail).Str("subject", email.Subject).Msg("email sent")
	return nil
}

type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, email Email) error {
	log.Info().Str("to", email.ToEmail).Str("subject", email.Subject).Msg("email (not delivered)")
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; }
			.header { background-color: #1F3A5F; padding: 24px; text-align: center; color: #FFFFFF; }
			.content { padding: 32px 24px; color: #1F3A5F; line-height: 1.6; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>LMS</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(title), bodyContent)
}

func displayName(first, username string) string {
	if first != "" {
		return first
	}
	return username
}

// --- Triggers ---

func WelcomeEmail(to, firstName, username string) Email {
	body := fmt.Sprintf(`<p>Dear %s,</p><p>Your account <strong>%s</strong> has been created.</p>`,
		html.EscapeString(displayName(firstName, username)), html.EscapeString(username))
	return Email{ToEmail: to, ToName: firstName, Subject: "Welcome to LMS", HTML: getEmailTemplate("Welcome!", body)}
}

func EnrollmentEmail(to, firstName, username, courseName string) Email {
	body := fmt.Sprintf(`<p>Dear %s,</p><p>You are now enrolled in <strong>%s</strong>.</p>`,
		html.EscapeString(displayName(firstName, username)), html.EscapeString(courseName))
	return Email{ToEmail: to, ToName: firstName, Subject: "Enrolled: " + courseName, HTML: getEmailTemplate("Enrollment Confirmed", body)}
}

func ReleaseEmail(to, firstName, username, courseName, contentName string) Email {
	body := fmt.Sprintf(`<p>Dear %s,</p><p>New content <strong>%s</strong> is now available in <strong>%s</strong>.</p>`,
		html.EscapeString(displayName(firstName, username)), html.EscapeString(contentName), html.EscapeString(courseName))
	return Email{ToEmail: to, ToName: firstName, Subject: "New in " + courseName + ": " + contentName, HTML: getEmailTemplate("New Content Released", body)}
}

// SendAsync delivers email in the background; failures are only logged
func SendAsync(email Email) {
	go func() {
		if err := Mailer.Send(context.Background(), email); err != nil {
			log.Error().Err(err).Str("to", email.ToEmail).Str("subject", email.Subject).Msg("failed to send email")
		}
	}()
}
