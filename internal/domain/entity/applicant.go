package entity

import (
	"strings"
	"time"
)

// Applicant is the aggregate root for the applicant domain.
// Password holds the bcrypt hash; the plaintext never reaches storage or logs.
type Applicant struct {
	ID             int
	FirstName      string
	LastName       string
	Location       string
	Email          string
	Password       string
	JobTitle       string
	AboutMe        string
	ResumeFileURL  string
	JobPreferences string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName is the display name used in emails and LLM prompts.
func (a *Applicant) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
