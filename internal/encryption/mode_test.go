package encryption

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"CBC", ModeCBC},
		{"cbc", ModeCBC},
		{"CFB", ModeCFB},
		{"ofb", ModeOFB},
		{"Ctr", ModeCTR},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.name)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tt.name, err)

			continue
		}

		if mode != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.name, mode, tt.want)
		}
	}
}

func TestParseModeRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "ECB", "GCM", "CBC2"} {
		if _, err := ParseMode(name); !errors.Is(err, ErrUnsupportedMode) {
			t.Errorf("ParseMode(%q): got %v, want %v", name, err, ErrUnsupportedMode)
		}
	}
}

func TestModePadded(t *testing.T) {
	if !ModeCBC.Padded() {
		t.Error("CBC must require padding")
	}

	for _, mode := range []Mode{ModeCFB, ModeOFB, ModeCTR} {
		if mode.Padded() {
			t.Errorf("%s must not require padding", mode)
		}
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{ModeCBC: "CBC", ModeCFB: "CFB", ModeOFB: "OFB", ModeCTR: "CTR"}

	for mode, want := range names {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", byte(mode), got, want)
		}
	}
}
