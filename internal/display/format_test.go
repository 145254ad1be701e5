package display

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"exact kib", 1024, "1.0 KiB"},
		{"kib", 1536, "1.5 KiB"},
		{"mib", 5 * 1024 * 1024, "5.0 MiB"},
		{"gib", 2 * 1024 * 1024 * 1024, "2.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.in)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "duplicate", "duplicates"); got != "duplicate" {
		t.Errorf("Plural(1) = %q, want %q", got, "duplicate")
	}
	if got := Plural(0, "duplicate", "duplicates"); got != "duplicates" {
		t.Errorf("Plural(0) = %q, want %q", got, "duplicates")
	}
	if got := Plural(7, "file", "files"); got != "files" {
		t.Errorf("Plural(7) = %q, want %q", got, "files")
	}
}
