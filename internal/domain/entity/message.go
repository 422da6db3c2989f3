package entity

import "time"

// Field length limits for contact messages. Oversized payloads are rejected
// before any delivery attempt.
const (
	maxNameLength    = 200
	maxSubjectLength = 300
	maxMessageLength = 5000
)

// ContactMessage is one submission of the contact form. Messages are not
// persisted; they exist only for the duration of the delivery attempt.
type ContactMessage struct {
	Name        string
	Email       string
	Subject     string
	Body        string
	SubmittedAt time.Time
}

// Validate checks that every field of the message is present, the sender
// address is well-formed, and no field exceeds its length limit.
func (m *ContactMessage) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(m.Name) > maxNameLength {
		return &ValidationError{Field: "name", Message: "is too long"}
	}
	if err := ValidateEmail(m.Email); err != nil {
		return err
	}
	if m.Subject == "" {
		return &ValidationError{Field: "subject", Message: "is required"}
	}
	if len(m.Subject) > maxSubjectLength {
		return &ValidationError{Field: "subject", Message: "is too long"}
	}
	if m.Body == "" {
		return &ValidationError{Field: "message", Message: "is required"}
	}
	if len(m.Body) > maxMessageLength {
		return &ValidationError{Field: "message", Message: "is too long"}
	}
	return nil
}
