package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// PhotoReference returns a stable server-side name for an uploaded completion
// photo. The client-supplied name is untrusted; only the extension survives.
func PhotoReference(ext string) string {
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("completions/%s.%s", uuid.NewString(), ext)
}
