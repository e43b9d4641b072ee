package schedule

import "strings"

// gradeTokens is the fixed set of recognizable grade labels.
var gradeTokens = []string{"3A", "3B", "3C", "3D", "3E"}

// InferGrade extracts a grade token from a free-text class label by
// substring match. Best-effort display helper only: detailed slots
// carry an explicit Grade field that is authoritative. Returns ""
// when no token matches.
func InferGrade(label string) string {
	upper := strings.ToUpper(label)
	for _, g := range gradeTokens {
		if strings.Contains(upper, g) {
			return g
		}
	}
	return ""
}
