package dlfcn

import (
	"encoding/binary"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var wide = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeWide converts UTF-8 text into a NUL terminated UTF-16 buffer as the Windows loader expects.
// Invalid UTF-8 fails with ErrnoNoUnicodeTranslation; empty text or an embedded NUL fails with ErrnoInvalidParameter.
// A failure never returns a buffer.
func EncodeWide(s string) ([]uint16, error) {
	if s == "" || strings.IndexByte(s, 0) >= 0 {
		return nil, ErrnoInvalidParameter
	}
	b, _, err := transform.Bytes(transform.Chain(encoding.UTF8Validator, wide.NewEncoder()), []byte(s))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, ErrnoNoUnicodeTranslation
		}
		return nil, ErrnoInvalidParameter
	}
	n := len(b) / 2
	w := make([]uint16, n+1)
	for i := 0; i < n; i++ {
		w[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return w, nil
}

// DecodeWide converts a UTF-16 buffer up to the first NUL back to UTF-8.
func DecodeWide(w []uint16) string {
	b := make([]byte, 0, len(w)*2)
	for _, c := range w {
		if c == 0 {
			break
		}
		b = binary.LittleEndian.AppendUint16(b, c)
	}
	s, err := wide.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}
