package logging

import (
	"os"
	"testing"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"auto: NO_COLOR prevents color", ColorAuto, map[string]string{"NO_COLOR": "1"}, true, false},
		{"auto: TERM=dumb prevents color", ColorAuto, map[string]string{"TERM": "dumb"}, true, false},
		{"auto: non-TTY prevents color", ColorAuto, nil, false, false},
		{"auto: TTY colors", ColorAuto, map[string]string{"TERM": "xterm"}, true, true},
		{"always beats NO_COLOR", ColorAlways, map[string]string{"NO_COLOR": "1"}, false, true},
		{"never beats TTY", ColorNever, nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant env vars; t.Setenv restores them afterwards
			t.Setenv("NO_COLOR", "")
			os.Unsetenv("NO_COLOR")
			t.Setenv("TERM", "")

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := supportsColor(tt.mode, tt.isTTY); got != tt.want {
				t.Errorf("supportsColor(%s) = %v, want %v (env=%v, isTTY=%v)", tt.mode, got, tt.want, tt.env, tt.isTTY)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "always", "never"} {
		m, err := ParseColorMode(s)
		if err != nil || string(m) != s {
			t.Errorf("ParseColorMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("ParseColorMode(\"sometimes\") should fail")
	}
}

func TestSetColorMode(t *testing.T) {
	t.Cleanup(func() { SetColorMode(ColorAuto) })

	if CurrentColorMode() != ColorAuto {
		t.Errorf("default mode = %q, want auto", CurrentColorMode())
	}

	SetColorMode(ColorAlways)
	var w mockWriter
	if !SupportsColor(&w) {
		t.Error("SupportsColor should be true with ColorAlways")
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	var w mockWriter
	if IsTTY(&w) {
		t.Error("IsTTY should return false for mockWriter")
	}
}

type mockWriter struct{}

func (m *mockWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
