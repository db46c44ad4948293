package mailer

import (
	"strings"
	"testing"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

func testContact() *entity.ContactSubmission {
	phone := "202-555-0143"
	message := "Looking for a full wardrobe refresh."
	return &entity.ContactSubmission{
		ID:               7,
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		Phone:            &phone,
		ServiceInterest:  "color_analysis",
		ConsultationType: "virtual",
		BudgetRange:      "500_1000",
		Message:          &message,
	}
}

func TestContactNotification(t *testing.T) {
	msg := NewContactNotification(testContact())

	if got := msg.Subject(); got != "New Contact Form Submission - Jane Doe" {
		t.Fatalf("unexpected subject: %q", got)
	}

	body, err := msg.Body()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Jane Doe",
		"jane@example.com",
		"+12025550143",
		"COLOR ANALYSIS",
		"VIRTUAL",
		"$500 - $1,000",
		"Looking for a full wardrobe refresh.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestContactNotification_OptionalFields(t *testing.T) {
	contact := testContact()
	contact.Phone = nil
	contact.Message = nil

	msg := NewContactNotification(contact)
	if msg.Phone != "Not provided" {
		t.Fatalf("expected placeholder phone, got %q", msg.Phone)
	}

	body, err := msg.Body()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<h3 style=\"margin-top: 0;\">Message</h3>") {
		t.Error("message section rendered without a message")
	}
}

func TestContactConfirmation(t *testing.T) {
	msg := &ContactConfirmation{Name: "Jane Doe"}
	body, err := msg.Body()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, "Thank you, Jane Doe!") {
		t.Error("body missing greeting")
	}
}

func TestNewsletterWelcome(t *testing.T) {
	msg := &NewsletterWelcome{}
	body, err := msg.Body()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, "Thank you for subscribing!") {
		t.Error("body missing welcome copy")
	}
}

func TestDisplayPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"202-555-0143", "+12025550143"},
		{"+1 (202) 555-0143", "+12025550143"},
		{"not a number", "not a number"},
		{"000", "000"},
	}
	for _, tc := range cases {
		if got := displayPhone(tc.in); got != tc.want {
			t.Errorf("displayPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrettifyBudget(t *testing.T) {
	cases := map[string]string{
		"under_500": "Under $500",
		"500_1000":  "$500 - $1,000",
		"1000_2500": "$1,000 - $2,500",
		"2500_plus": "$2,500+",
	}
	for in, want := range cases {
		if got := prettifyBudget(in); got != want {
			t.Errorf("prettifyBudget(%q) = %q, want %q", in, got, want)
		}
	}
}
