package engine

import "github.com/google/uuid"

// defaultID generates stable unique identifiers for sessions and
// session records.
func defaultID() string {
	return uuid.NewString()
}
