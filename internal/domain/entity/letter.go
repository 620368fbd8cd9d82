package entity

import "time"

// Letter is the JSON document persisted to blob storage for a finished
// cover letter. The email worker consumes it to deliver the letter.
type Letter struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CoverLetter string    `json:"coverLetter"`
	JobTitle    string    `json:"jobTitle,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
