package letters

import "strings"

// MaxInputLength caps the job description and profile inputs fed to the
// generator (10KB, matching the browser front end's limit).
const MaxInputLength = 10000

// Fragments that indicate script injection rather than job text. Matched
// case-insensitively against the whole input.
var suspiciousFragments = []string{
	"<script",
	"javascript:",
	"data:",
	"vbscript:",
	"onload=",
	"onerror=",
	"eval(",
	"settimeout(",
	"setinterval(",
}

// IsValidInput reports whether free-text input is safe to forward to the
// LLM: non-blank, within maxLength, and free of script-injection fragments.
// A maxLength of 0 falls back to MaxInputLength.
func IsValidInput(input string, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = MaxInputLength
	}
	if strings.TrimSpace(input) == "" {
		return false
	}
	if len(input) > maxLength {
		return false
	}
	lower := strings.ToLower(input)
	return !containsAny(lower, suspiciousFragments)
}
