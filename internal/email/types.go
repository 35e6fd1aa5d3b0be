package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds the values rendered into an email template.
type TemplateData map[string]interface{}

// Template names used by the services.
const (
	TemplateWelcome            = "welcome"
	TemplateInvitationReceived = "invitation_received"
	TemplateContactAck         = "contact_ack"
)
