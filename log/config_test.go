package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	} {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	want := []string{"trace", "debug", "info", "warn", "error"}
	got := slices.Collect(Levels())
	if !slices.Equal(got, want) {
		t.Fatalf("Levels() = %v, want %v", got, want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"yaml", DefaultFormat},
	} {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNamedTimeLayout(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"RFC3339", time.RFC3339},
		{"kitchen", time.Kitchen},
		{"none", ""},
		{"2006-01-02", "2006-01-02"},
	} {
		if got := namedTimeLayout(tt.in); got != tt.want {
			t.Errorf("namedTimeLayout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
