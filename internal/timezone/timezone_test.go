package timezone

import (
	"testing"
	"time"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	if got := Location("Mars/Olympus").String(); got != DefaultTimezone {
		t.Errorf("expected %s, got %s", DefaultTimezone, got)
	}
	if got := Location("").String(); got != DefaultTimezone {
		t.Errorf("expected %s for empty zone, got %s", DefaultTimezone, got)
	}
	if got := Location("UTC").String(); got != "UTC" {
		t.Errorf("expected UTC, got %s", got)
	}
}

func TestToday_Format(t *testing.T) {
	got := Today("UTC")
	if _, err := time.Parse(DateLayout, got); err != nil {
		t.Errorf("Today returned %q: %v", got, err)
	}
}
