package app

import (
	"pawmatch_backend/internal/email"
	"pawmatch_backend/internal/logger"
)

// MockEmailProvider logs outgoing mail instead of sending it. Used in
// development and in the integration tests.
type MockEmailProvider struct {
	renderer email.TemplateRenderer
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("MOCK EMAIL sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	if m.renderer != nil {
		body, err := m.renderer.Render(templateName, data)
		if err != nil {
			return err
		}
		msg.HTMLBody = body
	}
	logger.Info("MOCK EMAIL sent (template)", "to", msg.To, "subject", msg.Subject, "template", templateName)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
