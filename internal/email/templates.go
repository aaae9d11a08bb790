package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager implements TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Built-in booking notification templates.
	_ = tm.AddTemplate(TemplateBookingCreated, bookingCreatedTemplate)
	_ = tm.AddTemplate(TemplateBookingStatusChanged, bookingStatusChangedTemplate)

	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

const (
	TemplateBookingCreated       = "booking_created"
	TemplateBookingStatusChanged = "booking_status_changed"
)

const bookingCreatedTemplate = `
<h2>New booking request</h2>
<p>{{.OwnerName}} booked <b>{{.ServiceName}}</b> for {{.PetName}}.</p>
<p>{{.StartTime}} &mdash; {{.EndTime}}</p>
<p>Total: {{.TotalPrice}}</p>
`

const bookingStatusChangedTemplate = `
<h2>Booking update</h2>
<p>Your booking for <b>{{.ServiceName}}</b> ({{.PetName}}) is now <b>{{.Status}}</b>.</p>
<p>{{.StartTime}} &mdash; {{.EndTime}}</p>
`
