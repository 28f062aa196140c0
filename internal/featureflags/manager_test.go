package featureflags

import "testing"

func TestManagerEnabled(t *testing.T) {
	m := NewManager("global_feed=on, dark_mode=off, open_registration=true, legacy_feed=0")

	tests := []struct {
		name     string
		flag     string
		expected bool
	}{
		{"on", "global_feed", true},
		{"off", "dark_mode", false},
		{"true alias", "open_registration", true},
		{"zero alias", "legacy_feed", false},
		{"unknown flag", "does_not_exist", false},
		{"case insensitive", "GLOBAL_FEED", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Enabled(tt.flag, 1); got != tt.expected {
				t.Errorf("Enabled(%q) = %v, want %v", tt.flag, got, tt.expected)
			}
		})
	}
}

func TestManagerPercentageRollout(t *testing.T) {
	m := NewManager("global_feed=50%")

	// Deterministic per user: the same user always lands in the same bucket.
	first := m.Enabled("global_feed", 42)
	for i := 0; i < 10; i++ {
		if m.Enabled("global_feed", 42) != first {
			t.Fatal("rollout decision must be stable for a given user")
		}
	}

	// Anonymous users never get a partial rollout.
	if m.Enabled("global_feed", 0) {
		t.Error("userID 0 must not be included in a percentage rollout")
	}

	// Roughly half the users should be included.
	enabled := 0
	for id := uint(1); id <= 1000; id++ {
		if m.Enabled("global_feed", id) {
			enabled++
		}
	}
	if enabled < 350 || enabled > 650 {
		t.Errorf("expected roughly 50%% enabled, got %d of 1000", enabled)
	}
}

func TestManagerPercentageBounds(t *testing.T) {
	m := NewManager("everyone=100%,nobody=0%,bogus=abc%")

	if !m.Enabled("everyone", 0) {
		t.Error("100%% must be on for everyone, including anonymous")
	}
	if m.Enabled("nobody", 7) {
		t.Error("0%% must be off for everyone")
	}
	if m.Enabled("bogus", 7) {
		t.Error("an unparseable percentage must be off")
	}
}

func TestManagerSnapshot(t *testing.T) {
	m := NewManager("global_feed=on,dark_mode=off")

	snap := m.Snapshot(1)
	if len(snap) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(snap))
	}
	if !snap["global_feed"] || snap["dark_mode"] {
		t.Errorf("unexpected snapshot: %v", snap)
	}
}

func TestNewManagerIgnoresMalformedPairs(t *testing.T) {
	m := NewManager("global_feed=on,not-a-pair,=on,empty=")

	if !m.Enabled("global_feed", 1) {
		t.Error("well-formed pair must survive malformed neighbors")
	}
	if len(m.Snapshot(1)) != 1 {
		t.Errorf("malformed pairs must be dropped: %v", m.Snapshot(1))
	}
}
