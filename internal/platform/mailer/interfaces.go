package mailer

// Service sends one email and returns the provider's message ID when it
// has one. Implementations: MailerSend (production), SMTP (staging/Mailpit),
// Dev (logs only).
type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
}
