package email

// Provider sends email.
type Provider interface {
	// Send sends a plain message
	Send(email *Email) error

	// SendWithTemplate renders a named template into the HTML body and sends
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration
	Validate() error

	// Close releases provider resources
	Close() error
}

// TemplateRenderer renders named templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
