package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

// Message is a renderable transactional email.
type Message interface {
	Subject() string
	Body() (string, error)
}

const defaultPhoneRegion = "US"

var templates = template.Must(template.New("mail").Parse(`
{{define "ContactNotification"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #5C3A2E;">New Contact Form Submission</h2>
  <div style="background-color: #FAF8F5; padding: 20px; border-radius: 8px;">
    <h3 style="color: #5C3A2E; margin-top: 0;">Client Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
  </div>
  <div style="background-color: #F9E4B7; padding: 20px; border-radius: 8px; margin-top: 20px;">
    <h3 style="color: #5C3A2E; margin-top: 0;">Service Details</h3>
    <p><strong>Service Interest:</strong> {{.ServiceInterest}}</p>
    <p><strong>Consultation Type:</strong> {{.ConsultationType}}</p>
    <p><strong>Budget Range:</strong> {{.BudgetRange}}</p>
  </div>
  {{if .Message}}
  <div style="background-color: #D6A77A; color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
    <h3 style="margin-top: 0;">Message</h3>
    <p>{{.Message}}</p>
  </div>
  {{end}}
  <div style="margin-top: 30px; text-align: center;">
    <p style="color: #5C3A2E; font-size: 14px;">Please respond to this inquiry within 24 hours for best conversion rates.</p>
  </div>
</div>
{{end}}

{{define "ContactConfirmation"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="text-align: center; padding: 30px 0;">
    <h1 style="color: #5C3A2E; margin: 0;">Michelle Almonte</h1>
    <p style="color: #D6A77A; font-size: 18px; margin: 5px 0;">Image Consulting</p>
  </div>
  <div style="background-color: #FAF8F5; padding: 30px; border-radius: 8px;">
    <h2 style="color: #5C3A2E;">Thank you, {{.Name}}!</h2>
    <p style="color: #5C3A2E; line-height: 1.6;">
      I've received your inquiry and I'm excited about the possibility of working together
      to transform your personal image and boost your confidence.
    </p>
    <p style="color: #5C3A2E; line-height: 1.6;">
      I'll review your submission and respond within 24 hours with next steps for your
      image consulting journey.
    </p>
    <div style="text-align: center; margin-top: 30px;">
      <p style="color: #5C3A2E;">Best regards,</p>
      <p style="color: #D6A77A; font-size: 18px; margin: 5px 0;"><em>Michelle Almonte</em></p>
      <p style="color: #5C3A2E; font-size: 14px;">Certified Image Consultant</p>
    </div>
  </div>
</div>
{{end}}

{{define "NewsletterWelcome"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="text-align: center; padding: 30px 0; background-color: #F9E4B7;">
    <h1 style="color: #5C3A2E; margin: 0;">Welcome to the Style Community!</h1>
    <p style="color: #5C3A2E; font-size: 18px; margin: 10px 0;">Michelle Almonte Image Consulting</p>
  </div>
  <div style="padding: 30px; background-color: #FAF8F5;">
    <h2 style="color: #5C3A2E;">Thank you for subscribing!</h2>
    <p style="color: #5C3A2E; line-height: 1.6;">
      You're now part of a community that receives weekly style tips, image advice,
      and confidence-building strategies directly to your inbox.
    </p>
  </div>
  <div style="text-align: center; padding: 20px; color: #C9C9C9; font-size: 12px;">
    <p>You can unsubscribe at any time by replying to this email.</p>
  </div>
</div>
{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// ContactNotification is the owner-facing email about a new submission.
type ContactNotification struct {
	Name             string
	Email            string
	Phone            string
	ServiceInterest  string
	ConsultationType string
	BudgetRange      string
	Message          string
}

// NewContactNotification fills the owner notification from a stored
// submission, prettifying the enum values for display.
func NewContactNotification(contact *entity.ContactSubmission) *ContactNotification {
	phone := "Not provided"
	if contact.Phone != nil {
		phone = displayPhone(*contact.Phone)
	}
	message := ""
	if contact.Message != nil {
		message = *contact.Message
	}
	return &ContactNotification{
		Name:             contact.Name,
		Email:            contact.Email,
		Phone:            phone,
		ServiceInterest:  prettifyEnum(contact.ServiceInterest),
		ConsultationType: prettifyEnum(contact.ConsultationType),
		BudgetRange:      prettifyBudget(contact.BudgetRange),
		Message:          message,
	}
}

// Subject includes the prospect name so inbox triage stays easy.
func (m *ContactNotification) Subject() string {
	return "New Contact Form Submission - " + m.Name
}

// Body renders the owner notification HTML.
func (m *ContactNotification) Body() (string, error) {
	return render("ContactNotification", m)
}

// ContactConfirmation is the prospect-facing acknowledgement email.
type ContactConfirmation struct {
	Name string
}

// Subject gets the confirmation email subject.
func (*ContactConfirmation) Subject() string {
	return "Thank you for contacting Michelle Almonte Image Consulting"
}

// Body renders the confirmation HTML.
func (m *ContactConfirmation) Body() (string, error) {
	return render("ContactConfirmation", m)
}

// NewsletterWelcome is the welcome email for new subscribers.
type NewsletterWelcome struct{}

// Subject gets the welcome email subject.
func (*NewsletterWelcome) Subject() string {
	return "Welcome to Michelle Almonte's Style Newsletter!"
}

// Body renders the welcome HTML.
func (m *NewsletterWelcome) Body() (string, error) {
	return render("NewsletterWelcome", m)
}

// displayPhone formats a stored phone number as E.164 when it parses,
// falling back to the raw input.
func displayPhone(raw string) string {
	number, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return raw
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func prettifyEnum(value string) string {
	return strings.ToUpper(strings.ReplaceAll(value, "_", " "))
}

func prettifyBudget(value string) string {
	switch value {
	case "under_500":
		return "Under $500"
	case "500_1000":
		return "$500 - $1,000"
	case "1000_2500":
		return "$1,000 - $2,500"
	case "2500_plus":
		return "$2,500+"
	}
	return prettifyEnum(value)
}
