package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "")
	if got := envOrDefault("CFG_TEST_STR", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv("CFG_TEST_STR", "value")
	if got := envOrDefault("CFG_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_DUR", "not-a-duration")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected default on parse error, got %v", got)
	}
	t.Setenv("CFG_TEST_DUR", "-5s")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected default on negative, got %v", got)
	}
	t.Setenv("CFG_TEST_DUR", "45s")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Minute); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("CFG_TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", tc.def); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
