package utils

import "github.com/google/uuid"

// GenerateID returns a new random identifier for reports and
// component rows.
func GenerateID() string {
	return uuid.NewString()
}
