package email

// Attachment is an email attachment.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Email is an outgoing message.
type Email struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	HTMLBody    string
	Attachments []Attachment
}

// TemplateData feeds the email templates.
type TemplateData map[string]interface{}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}
