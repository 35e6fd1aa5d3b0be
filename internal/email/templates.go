package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager is an in-memory TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
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
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// RegisterDefaultTemplates loads the built-in message bodies.
func (tm *TemplateManager) RegisterDefaultTemplates() error {
	defaults := map[string]string{
		TemplateWelcome: `<h2>Welcome to AIB Hub, {{.Name}}!</h2>
<p>Your creator profile is under review. You will appear in the directory once an administrator approves it.</p>`,

		TemplateInvitationReceived: `<h2>You have a new project invitation</h2>
<p>Hi {{.CreatorName}},</p>
<p><strong>{{.SenderEmail}}</strong> invited you to work on <strong>{{.JobTitle}}</strong>{{if .JobBudget}} (budget: {{.JobBudget}}){{end}}.</p>
{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
<p>Log in to respond to the invitation.</p>`,

		TemplateContactAck: `<h2>We received your message</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out. Our team will get back to you shortly.</p>`,
	}

	for name, body := range defaults {
		if err := tm.AddTemplate(name, body); err != nil {
			return err
		}
	}
	return nil
}
