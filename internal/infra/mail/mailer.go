// Package mail implements outbound transactional email delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"boarding/config"
	"boarding/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// smtpMailer implements service.Mailer over SMTP.
type smtpMailer struct {
	client    *gomail.Client
	fromName  string
	fromEmail string
	logoURL   string
	logger    *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client:    client,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		logoURL:   cfg.LogoURL,
		logger:    params.Logger,
	}, nil
}

var verificationCodeTmpl = template.Must(template.New("verification_code").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  {{if .LogoURL}}<img src="{{.LogoURL}}" alt="" height="40"/>{{end}}
  <p>Hi {{.FirstName}},</p>
  <p>Your email verification code is:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
  <p>The code expires in 15 minutes. If you did not request it, you can ignore this email.</p>
</body>
</html>`))

var saveForLaterTmpl = template.Must(template.New("save_for_later").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  {{if .LogoURL}}<img src="{{.LogoURL}}" alt="" height="40"/>{{end}}
  <p>Hi {{.FirstName}},</p>
  <p>Your application has been saved. Pick up where you left off any time:</p>
  <p><a href="{{.ResumeURL}}">Continue your application</a></p>
</body>
</html>`))

var completionTmpl = template.Must(template.New("completion").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  {{if .LogoURL}}<img src="{{.LogoURL}}" alt="" height="40"/>{{end}}
  <p>Hi {{.FirstName}},</p>
  <p>Your application for {{.CompanyName}} is complete. We will be in touch once your account is ready.</p>
</body>
</html>`))

// SendVerificationCode delivers a one-time email verification code.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, mail service.VerificationCodeMail) error {
	return m.send(ctx, mail.To, "Your verification code", verificationCodeTmpl, struct {
		LogoURL   string
		FirstName string
		Code      string
	}{m.logoURL, mail.FirstName, mail.Code})
}

// SendSaveForLater delivers a resume link so the applicant can continue later.
func (m *smtpMailer) SendSaveForLater(ctx context.Context, mail service.SaveForLaterMail) error {
	return m.send(ctx, mail.To, "Your saved application", saveForLaterTmpl, struct {
		LogoURL   string
		FirstName string
		ResumeURL string
	}{m.logoURL, mail.FirstName, mail.ResumeURL})
}

// SendCompletion delivers the final confirmation once boarding completes.
func (m *smtpMailer) SendCompletion(ctx context.Context, mail service.CompletionMail) error {
	return m.send(ctx, mail.To, "Your application is complete", completionTmpl, struct {
		LogoURL     string
		FirstName   string
		CompanyName string
	}{m.logoURL, mail.FirstName, mail.CompanyName})
}

func (m *smtpMailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrap(err, "failed to render email body")
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "Failed to send email",
			slog.String("subject", subject),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
