package mailing

import (
	"Recipe-Share/internal/utils"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/gomail.v2"
	"strconv"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
	}

	noopMailer struct{}
)

func LoadMailConfig(conf *utils.Config) MailConfig {
	return MailConfig{
		AppURL:       conf.AppURL,
		SMTPHost:     conf.SMTPHost,
		SMTPPort:     conf.SMTPPort,
		SMTPSender:   conf.SMTPSenderName,
		SMTPEmail:    conf.SMTPAuthEmail,
		SMTPPassword: conf.SMTPAuthPassword,
	}
}

// NewMailer returns a mailer sending through the configured SMTP server, or
// one that drops every message when no server is configured.
func NewMailer(config MailConfig) Mailer {
	if config.SMTPHost == "" {
		log.Info("mailing: SMTP_HOST not set, outgoing mail is disabled")
		return noopMailer{}
	}
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("mailing: invalid SMTP port %q: %w", m.config.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	if err := dialer.DialAndSend(mailer); err != nil {
		return fmt.Errorf("mailing: sending to %s: %w", toEmail, err)
	}
	return nil
}

func (noopMailer) SendMail(string, string, string) error {
	return nil
}

func WelcomeBody(username string, appURL string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Welcome to Recipe Share! Start sharing your recipes at <a href="%s">%s</a>.</p>`,
		username, appURL, appURL,
	)
}
