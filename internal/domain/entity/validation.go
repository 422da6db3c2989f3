package entity

import (
	"fmt"
	"net/mail"
	"net/url"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateURL validates the format of a URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a host.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}

// ValidateEmail validates an email address using RFC 5322 address parsing.
// Returns a ValidationError if the address is empty or malformed.
func ValidateEmail(address string) error {
	if address == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}

	if _, err := mail.ParseAddress(address); err != nil {
		return &ValidationError{Field: "email", Message: "email address is invalid"}
	}

	return nil
}
