package email

// Provider sends outbound email.
type Provider interface {
	// Send delivers an already-built message.
	Send(email *Email) error

	// SendTemplate renders templateName with data and delivers it.
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named email templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
