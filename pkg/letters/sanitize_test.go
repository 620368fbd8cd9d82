package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips bracketed placeholders",
			in:   "I am excited to apply for [Job Title] at your company.",
			want: "I am excited to apply for at your company.",
		},
		{
			name: "drops leading salutation",
			in:   "Dear Hiring Manager,\nI am a strong candidate.",
			want: "I am a strong candidate.",
		},
		{
			name: "drops template chatter lines",
			in:   "Here's a draft of a cover letter tailored to the role:\nI bring five years of experience.",
			want: "I bring five years of experience.",
		},
		{
			name: "drops dash-only lines",
			in:   "I am qualified.\n---\nSincerely.",
			want: "I am qualified.\nSincerely.",
		},
		{
			name: "collapses triple newlines",
			in:   "First paragraph.\n\n\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "closes a hanging sentence",
			in:   "I look forward to hearing from you",
			want: "I look forward to hearing from you.",
		},
		{
			name: "keeps exclamation endings",
			in:   "I would love to join your team!",
			want: "I would love to join your team!",
		},
		{
			name: "empty input stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_RewritesInventedDetails(t *testing.T) {
	got := Clean("I want to work at NPL Construction (S4) this year.")
	assert.NotContains(t, got, "NPL Construction")
	assert.Contains(t, got, "the position")
}
