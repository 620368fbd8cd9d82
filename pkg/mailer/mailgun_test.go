package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterSubject(t *testing.T) {
	assert.Equal(t, "Your Cover Letter for Go Developer", LetterSubject("Go Developer"))
	assert.Equal(t, "Your Generated Cover Letter", LetterSubject(""))
}

func TestLetterBody(t *testing.T) {
	body := LetterBody("Jane Doe", "Letter text.")
	assert.Contains(t, body, "Dear Jane Doe,")
	assert.Contains(t, body, "Letter text.")
	assert.Contains(t, body, "Best regards,")

	anon := LetterBody("", "Letter text.")
	assert.Contains(t, anon, "Dear Applicant,")
}
