// Package hexcodec converts text to and from its hexadecimal representation.
package hexcodec

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

// Encode returns the lower-case hex representation of the UTF-8 bytes of text.
func Encode(text string) string {
	return hex.EncodeToString([]byte(text))
}

// Decode reverses Encode. Upper-case digits and surrounding whitespace are
// accepted; the decoded bytes must be valid UTF-8.
func Decode(s string) (string, error) {
	s = strings.TrimSpace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", calcerr.Wrap(calcerr.ErrCodeInvalidArgument, err, "cannot hex decode %q", s)
	}
	if !utf8.Valid(b) {
		return "", calcerr.Invalid("decoded bytes of %q are not valid UTF-8", s)
	}
	return string(b), nil
}
