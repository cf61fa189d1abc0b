package utils

import "testing"

func TestPackageFromCmdline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "com.decker502.ballstorm\x00", "com.decker502.ballstorm"},
		{"extra args", "com.decker502.ballstorm\x00--flag\x00", "com.decker502.ballstorm"},
		{"sub process", "com.decker502.ballstorm:sound\x00", "com.decker502.ballstorm"},
		{"trailing newline", "com.decker502.ballstorm\n", "com.decker502.ballstorm"},
		{"empty", "\x00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packageFromCmdline([]byte(tt.in)); got != tt.want {
				t.Errorf("packageFromCmdline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
