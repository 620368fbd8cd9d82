// Package letters cleans LLM-generated cover letter text before it is
// emailed or stored.
package letters

import (
	"regexp"
	"strings"
)

var (
	bracketRe     = regexp.MustCompile(`\[.*?\]`)
	salutationRe  = regexp.MustCompile(`(?i)^\s*Dear\s+Hiring\s+Manager,?\s*\n?`)
	tripleNewline = regexp.MustCompile(`\n{3,}`)
	doubleSpace   = regexp.MustCompile(` {2,}`)
)

// Model output sometimes names a concrete employer or addressee it was never
// given. These get rewritten to a neutral phrase rather than dropped.
var inventedDetailRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)NPL Construction \(S4\)`),
	regexp.MustCompile(`(?i)at [A-Z][a-zA-Z &]+ in [A-Z][a-zA-Z ,]+`),
	regexp.MustCompile(`(?i)Berlin, Connecticut`),
	regexp.MustCompile(`(?i)Mr\.\s+Christopher\s+McGee`),
	regexp.MustCompile(`(?i)position at [A-Z][a-zA-Z &]+\s+in\s+[A-Z][a-zA-Z ,]+`),
}

// Template and instruction fragments the model tends to echo back. Any line
// containing one of these (case-insensitive) is dropped wholesale.
var templateFragments = []string{
	"here's a draft of a cover letter",
	"draft of a cover letter tailored to",
	"incorporating his profile",
	"incorporating her profile",
	"aiming for a formal and professional tone",
	"---",
	"your address - optional",
	"date",
	"hiring manager name",
	"company name",
	"company address",
	"mr./ms./mx. hiring manager",
	"if known, otherwise use",
	"as advertised",
	"where you saw the job posting",
	"platform where you saw",
	"e.g., linkedin",
	"e.g., matlab",
	"e.g., simul",
}

// Clean strips placeholders, template chatter, and the leading salutation
// from a generated letter, normalizes whitespace, and closes a trailing
// sentence left hanging. Best effort: it never fails, it only rewrites.
func Clean(text string) string {
	if text == "" {
		return text
	}

	result := bracketRe.ReplaceAllString(text, "")
	result = salutationRe.ReplaceAllString(result, "")

	for _, re := range inventedDetailRes {
		result = re.ReplaceAllString(result, "the position")
	}

	var kept []string
	for _, line := range strings.Split(result, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if len(kept) == 0 && trimmed == "" {
			continue
		}
		if containsAny(lower, templateFragments) {
			continue
		}
		if trimmed != "" && isDashLine(trimmed) {
			continue
		}
		if strings.ContainsAny(trimmed, "[]") {
			continue
		}
		kept = append(kept, line)
	}
	result = strings.Join(kept, "\n")

	result = tripleNewline.ReplaceAllString(result, "\n\n")
	result = bracketRe.ReplaceAllString(result, "")
	result = doubleSpace.ReplaceAllString(result, " ")

	trimmed := strings.TrimRight(result, " \t\n")
	if trimmed != "" && !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, "!") {
		result = trimmed + "."
	}

	return strings.TrimSpace(result)
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func isDashLine(s string) bool {
	for _, ch := range s {
		if ch != '-' && ch != ' ' {
			return false
		}
	}
	return true
}
