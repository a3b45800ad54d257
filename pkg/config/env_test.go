package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "custom")
	if got := GetEnvString("TEST_STRING", "default"); got != "custom" {
		t.Errorf("GetEnvString() = %q, want %q", got, "custom")
	}
	if got := GetEnvString("TEST_STRING_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "24")
	if got := GetEnvInt("TEST_INT", 12); got != 24 {
		t.Errorf("GetEnvInt() = %d, want 24", got)
	}

	t.Setenv("TEST_INT_BAD", "twelve")
	if got := GetEnvInt("TEST_INT_BAD", 12); got != 12 {
		t.Errorf("GetEnvInt() = %d, want default 12", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"T", true},
		{"false", false},
		{"0", false},
		{"banana", true}, // invalid falls back to default
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := GetEnvBool("TEST_BOOL", true); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "30s")
	if got := GetEnvDuration("TEST_DURATION", 10*time.Second); got != 30*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 30s", got)
	}

	t.Setenv("TEST_DURATION_BAD", "soon")
	if got := GetEnvDuration("TEST_DURATION_BAD", 10*time.Second); got != 10*time.Second {
		t.Errorf("GetEnvDuration() = %v, want default 10s", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "CN, RU , KP,")
	got := GetEnvStringList("TEST_LIST", []string{"CN"})
	want := []string{"CN", "RU", "KP"}
	if len(got) != len(want) {
		t.Fatalf("GetEnvStringList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvStringList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateDurationRange(t *testing.T) {
	if err := ValidateDurationRange(5*time.Second, time.Second, time.Minute); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := ValidateDurationRange(2*time.Minute, time.Second, time.Minute); err == nil {
		t.Error("expected error for duration above maximum")
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("expected error for zero duration")
	}
}
