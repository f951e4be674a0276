package urt

import (
	"errors"

	perrors "github.com/jmgilman/go/errors"
)

var (
	// ErrUnknownVariant is the cause of a decode failure on a tag the union does not have.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrMalformedDocument is the cause of a decode failure on a document that is
	// neither a single-key object nor a unit variant name.
	ErrMalformedDocument = errors.New("malformed tagged document")
)

// DecodeError reports that a serialized union of the named type could not be decoded.
// The result carries perrors.CodeInvalidInput and unwraps to cause.
func DecodeError(union string, cause error) error {
	return perrors.WithContext(
		perrors.Wrap(cause, perrors.CodeInvalidInput, "failed to decode "+union),
		"union", union)
}
