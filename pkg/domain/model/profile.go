package model

import (
	"fmt"
	"strings"
)

// UserProfile is optional medical context supplied by the caller of an
// advice or chat operation. All fields are optional; an empty profile
// contributes no context.
type UserProfile struct {
	Age         int      `json:"age,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	Medications []string `json:"medications,omitempty"`
}

// Context renders the non-empty profile fields as a context block for
// guidance generation. It returns an empty string when nothing is set.
func (p *UserProfile) Context() string {
	if p == nil {
		return ""
	}

	var parts []string
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("- Age: %d", p.Age))
	}
	if p.Gender != "" {
		parts = append(parts, "- Gender: "+p.Gender)
	}
	if len(p.Conditions) > 0 {
		parts = append(parts, "- Known Conditions: "+strings.Join(p.Conditions, ", "))
	}
	if len(p.Allergies) > 0 {
		parts = append(parts, "- Known Allergies: "+strings.Join(p.Allergies, ", "))
	}
	if len(p.Medications) > 0 {
		parts = append(parts, "- Current Medications: "+strings.Join(p.Medications, ", "))
	}

	if len(parts) == 0 {
		return ""
	}
	return "User Profile:\n" + strings.Join(parts, "\n")
}
