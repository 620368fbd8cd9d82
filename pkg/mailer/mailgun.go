// Package mailer sends finished cover letters over Mailgun.
package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const (
	maxAttempts = 3
	baseDelay   = time.Second
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends a single plain-text email via Mailgun.
func (m *Mailgun) Send(ctx context.Context, to, subject, text string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendWithRetry sends with up to 3 attempts and exponential backoff
// (1s, 2s between attempts). It returns the last error when all fail.
func (m *Mailgun) SendWithRetry(ctx context.Context, to, subject, text string) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = m.Send(ctx, to, subject, text)
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		delay := baseDelay << (attempt - 1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("mailgun send failed after %d attempts: %w", maxAttempts, lastErr)
}

// LetterSubject builds the email subject for a finished letter.
func LetterSubject(jobTitle string) string {
	if jobTitle == "" {
		return "Your Generated Cover Letter"
	}
	return fmt.Sprintf("Your Cover Letter for %s", jobTitle)
}

// LetterBody wraps the cleaned letter text in the delivery template.
func LetterBody(name, letter string) string {
	if name == "" {
		name = "Applicant"
	}
	return fmt.Sprintf("Dear %s,\n\nPlease find your generated cover letter below:\n\n%s\n\nBest regards,\nThe Cover Letter Service Team", name, letter)
}
