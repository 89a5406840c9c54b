package dlfcn

import "testing"

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
		ok   bool
	}{
		{"0", 0, true},
		{"65", 65, true},
		{"007", 7, true},
		{"65535", 65535, true},
		{"65536", 0, false},
		{"99999999999999999999", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"12a", 0, false},
		{"", 0, false},
		{" 12", 0, false},
		{"12 ", 0, false},
		{"1_000", 0, false},
		{"0x10", 0, false},
		{"func_name", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOrdinal(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseOrdinal(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseSymbol(t *testing.T) {
	s := ParseSymbol("65")
	if !s.IsOrdinal() || s.Ordinal() != 65 || s.String() != "#65" || s.Name() != "65" {
		t.Errorf("ParseSymbol(65) = %+v", s)
	}
	s = ParseSymbol("func_name")
	if s.IsOrdinal() || s.String() != "func_name" {
		t.Errorf("ParseSymbol(func_name) = %+v", s)
	}
	if s = ByName("65"); s.IsOrdinal() {
		t.Errorf("ByName(65) = %+v", s)
	}
	if s = ByOrdinal(3); !s.IsOrdinal() || s.Ordinal() != 3 || s.Name() != "3" {
		t.Errorf("ByOrdinal(3) = %+v", s)
	}
}
