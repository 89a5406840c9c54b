package dlfcn

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeWide(t *testing.T) {
	tests := []string{
		"a",
		"sample.dll",
		`C:\Program Files\lib\ünïcödé.dll`,
		"库.dll",
		"emoji-😀.dll",
		"€",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			w, err := EncodeWide(s)
			if err != nil {
				t.Fatalf("EncodeWide(%q) = %v", s, err)
			}
			want := append(utf16.Encode([]rune(s)), 0)
			if diff := cmp.Diff(want, w); diff != "" {
				t.Errorf("EncodeWide(%q) mismatch (-want +got):\n%s", s, diff)
			}
			if got := DecodeWide(w); got != s {
				t.Errorf("DecodeWide() = %q, want %q", got, s)
			}
		})
	}
}

func TestEncodeWideInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Errno
	}{
		{"empty", "", ErrnoInvalidParameter},
		{"nul", "a\x00b", ErrnoInvalidParameter},
		{"bad byte", "\xff", ErrnoNoUnicodeTranslation},
		{"bad tail", "abc\xc3", ErrnoNoUnicodeTranslation},
		{"surrogate", "\xed\xa0\x80", ErrnoNoUnicodeTranslation},
		{"overlong", "\xc0\xaf", ErrnoNoUnicodeTranslation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := EncodeWide(tt.in)
			if w != nil {
				t.Errorf("EncodeWide(%q) returned a buffer %v", tt.in, w)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("EncodeWide(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestDecodeWide(t *testing.T) {
	if got := DecodeWide([]uint16{'a', 'b', 0, 'c'}); got != "ab" {
		t.Errorf("DecodeWide() = %q", got)
	}
	if got := DecodeWide(nil); got != "" {
		t.Errorf("DecodeWide(nil) = %q", got)
	}
}
