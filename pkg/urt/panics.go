package urt

import "fmt"

// PanicMessage builds the message of a fatal contract violation. The payload
// that was found instead of the expected one is appended unless the package is
// built with the urt_minimal tag.
func PanicMessage(msg string, payload any) string {
	if Minimal {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, payload)
}
