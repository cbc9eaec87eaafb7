package diary

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, World", "hello-world"},
		{"  Trim me  ", "trim-me"},
		{"Café crème", "cafe-creme"},
		{"Go 1.22 release notes!", "go-1-22-release-notes"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
