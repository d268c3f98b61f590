package cli

import (
	"testing"
	"time"
)

func TestSplitRecipeRef(t *testing.T) {
	owner, name, tag, err := splitRecipeRef("ladybug-tools/daylight-factor/0.5.6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "ladybug-tools" || name != "daylight-factor" || tag != "0.5.6" {
		t.Errorf("unexpected parts: %s %s %s", owner, name, tag)
	}
}

func TestSplitRecipeRef_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"daylight-factor",
		"ladybug-tools/daylight-factor",
		"ladybug-tools//0.5.6",
		"a/b/c/d",
	}

	for _, ref := range invalid {
		if _, _, _, err := splitRecipeRef(ref); err == nil {
			t.Errorf("expected error for %q", ref)
		}
	}
}

func TestFmtTime(t *testing.T) {
	if got := fmtTime(nil); got != "" {
		t.Errorf("expected empty string for nil time, got %q", got)
	}

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := fmtTime(&ts); got != "2024-05-01T12:00:00Z" {
		t.Errorf("unexpected formatted time %q", got)
	}
}
