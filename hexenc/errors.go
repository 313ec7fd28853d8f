package hexenc

import (
	"errors"
	"fmt"
)

// Sentinel errors for hex decode failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrInvalidPrefix indicates a token that does not start with 0x or 0X.
	ErrInvalidPrefix = errors.New("invalid hex prefix")

	// ErrInvalidLength indicates a token whose length is not exactly 4.
	ErrInvalidLength = errors.New("invalid hex length")

	// ErrInvalidCharacter indicates a non-hexadecimal digit in a token.
	ErrInvalidCharacter = errors.New("invalid hex character")
)

// TokenError wraps a decode failure with the offending token.
// It preserves the sentinel kind in the chain for inspection via errors.Is.
type TokenError struct {
	// Kind is the sentinel error for classification (e.g., ErrInvalidPrefix).
	Kind error
	// Token is the token that failed to decode.
	Token string
	// Char is the offending character, set only for ErrInvalidCharacter.
	Char rune
}

func (e *TokenError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidPrefix):
		return fmt.Sprintf("invalid hex prefix %q, should start with 0x or 0X", e.Token)
	case errors.Is(e.Kind, ErrInvalidLength):
		return fmt.Sprintf("invalid token length %q, should be 4, e.g. '0x12'", e.Token)
	case errors.Is(e.Kind, ErrInvalidCharacter):
		return fmt.Sprintf("invalid character %q in token %q", e.Char, e.Token)
	default:
		return fmt.Sprintf("invalid hex token %q: %v", e.Token, e.Kind)
	}
}

// Unwrap returns the sentinel kind for errors.Is chain traversal.
func (e *TokenError) Unwrap() error {
	return e.Kind
}
