package model

import (
	"strings"

	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// SeverityInfo is display metadata for a severity level
type SeverityInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

var severityInfoTable = map[types.Severity]SeverityInfo{
	types.SeverityHigh: {
		Title:       "High Priority",
		Description: "Life-threatening emergency. Call emergency services immediately.",
		Color:       "#D32F2F",
		Icon:        "emergency",
	},
	types.SeverityMedium: {
		Title:       "Medium Priority",
		Description: "Urgent condition. Seek medical attention promptly.",
		Color:       "#F57C00",
		Icon:        "warning",
	},
	types.SeverityLow: {
		Title:       "Low Priority",
		Description: "Non-urgent condition. Monitor and consult a doctor if it worsens.",
		Color:       "#388E3C",
		Icon:        "info",
	},
}

var unknownSeverityInfo = SeverityInfo{
	Title:       "Unknown Severity",
	Description: "Severity level not recognized. When in doubt, seek medical advice.",
	Color:       "#757575",
	Icon:        "help",
}

// SeverityInfoFor returns display metadata for a severity level. The lookup
// is case-insensitive and has no state dependency. Anything that is not a
// known level, the empty string included, gets the generic unknown record:
// unlike dataset decoding, display lookup does not default to medium.
func SeverityInfoFor(severity types.Severity) SeverityInfo {
	key := types.Severity(strings.ToLower(strings.TrimSpace(severity.String())))
	if info, ok := severityInfoTable[key]; ok {
		return info
	}
	return unknownSeverityInfo
}
