// Package hexenc decodes hex byte literals of the form "0xNN 0xNN ...".
//
// Tokens are separated by whitespace or commas. Each token is exactly four
// characters: a 0x or 0X prefix followed by two hexadecimal digits. Decoding
// is all-or-nothing: the first bad token fails the whole input, since a
// digest over partially decoded bytes would be misleading.
package hexenc

import (
	"fmt"
	"strings"
	"unicode"
)

// Decode parses a hex-literal string into raw bytes.
// Empty tokens between separators are discarded; an input with no tokens
// decodes to an empty (non-nil) byte slice.
func Decode(s string) ([]byte, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	out := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		b, err := decodeToken(token)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Encode renders bytes as space-separated 0xNN tokens, the round-trip
// partner of Decode.
func Encode(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", v)
	}
	return sb.String()
}

// decodeToken decodes a single 0xNN token into its byte value.
// Length is checked before the prefix so a short token like "0x1" reports
// ErrInvalidLength, not a prefix failure.
func decodeToken(token string) (byte, error) {
	if len(token) != 4 {
		return 0, &TokenError{Kind: ErrInvalidLength, Token: token}
	}
	if !strings.HasPrefix(token, "0x") && !strings.HasPrefix(token, "0X") {
		return 0, &TokenError{Kind: ErrInvalidPrefix, Token: token}
	}

	hi, err := nibble(token[2], token)
	if err != nil {
		return 0, err
	}
	lo, err := nibble(token[3], token)
	if err != nil {
		return 0, err
	}
	return hi*16 + lo, nil
}

// nibble converts a single hex digit to its value.
func nibble(c byte, token string) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, &TokenError{Kind: ErrInvalidCharacter, Token: token, Char: rune(c)}
	}
}
