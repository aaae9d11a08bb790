package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPProvider implements Provider over plain SMTP.
type SMTPProvider struct {
	config   *SMTPConfig
	auth     smtp.Auth
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config:   config,
		auth:     auth,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if email.From == "" {
		email.From = p.config.From
	}

	message, err := p.buildMessage(email)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: p.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to dial TLS: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, p.config.Host)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		return p.sendWithClient(client, email, message)
	}

	return smtp.SendMail(addr, p.auth, email.From, email.To, message)
}

func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is not configured")
	}
	if p.config.Port == 0 {
		return fmt.Errorf("SMTP port is not configured")
	}
	if p.config.From == "" {
		return fmt.Errorf("SMTP from address is not configured")
	}
	return nil
}

func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) sendWithClient(client *smtp.Client, email *Email, message []byte) error {
	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(email.From); err != nil {
		return err
	}
	for _, to := range email.To {
		if err := client.Rcpt(to); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	return w.Close()
}

func (p *SMTPProvider) buildMessage(email *Email) ([]byte, error) {
	if len(email.To) == 0 {
		return nil, fmt.Errorf("email has no recipients")
	}

	var sb strings.Builder

	from := email.From
	if p.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, email.From)
	}

	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	if len(email.Cc) > 0 {
		sb.WriteString(fmt.Sprintf("Cc: %s\r\n", strings.Join(email.Cc, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		sb.WriteString(email.HTMLBody)
	} else {
		sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		sb.WriteString(email.Body)
	}

	return []byte(sb.String()), nil
}
