package types

import "strings"

// Severity represents the severity level of an emergency condition
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// AllSeverities returns all valid severity levels
func AllSeverities() []Severity {
	return []Severity{
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}

// IsValid checks if the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh,
		SeverityMedium,
		SeverityLow:
		return true
	default:
		return false
	}
}

// Normalize lowercases the severity and treats empty as SeverityMedium.
// Unknown values are kept as-is: the dataset does not enforce a closed set.
func (s Severity) Normalize() Severity {
	normalized := Severity(strings.ToLower(strings.TrimSpace(string(s))))
	if normalized == "" {
		return SeverityMedium
	}
	return normalized
}

// Matches reports whether the severity equals other, case-insensitively
func (s Severity) Matches(other Severity) bool {
	return strings.EqualFold(string(s), string(other))
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}
