package app

import "github.com/parths301/aib-hub/internal/email"

// MockEmailProvider is used in tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(emailMsg *email.Email) error { return nil }
func (m *MockEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }
