package main

import (
	"testing"
)

func TestParseCharID(t *testing.T) {
	tests := []struct {
		input    string
		expected uint32
	}{
		{"A", 'A'},
		{"65", 65},
		{"U+0041", 0x41},
		{"u+1F600", 0x1F600},
		{"ä", 'ä'},
		{"5", 5},
	}
	for _, tt := range tests {
		id, err := parseCharID(tt.input)
		if err != nil || id != tt.expected {
			t.Errorf("parseCharID(%q) = %d, %v; want %d", tt.input, id, err, tt.expected)
		}
	}
	for _, bad := range []string{"", "AB", "U+XYZ", "-1"} {
		if _, err := parseCharID(bad); err == nil {
			t.Errorf("parseCharID(%q) should fail", bad)
		}
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand("chars:5 kern:A:V frobnicate quit info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd) != 4 {
		t.Fatalf("expected 4 ops (stopping at quit), have %d", len(cmd))
	}
	if cmd[0].code != CHARS || cmd[1].code != KERN || cmd[2].code != HELP || cmd[3].code != QUIT {
		t.Errorf("unexpected op codes: %v", cmd)
	}
	if a, ok := cmd[1].arg(1); !ok || a != "V" {
		t.Errorf("expected second argument of kern to be V, have %q", a)
	}
	if _, ok := cmd[0].arg(1); ok {
		t.Errorf("expected chars to have a single argument")
	}
	if _, err := parseCommand("   "); err == nil {
		t.Errorf("expected error for empty command")
	}
}

func TestCharLabel(t *testing.T) {
	if s := charLabel('A'); s != "'A'" {
		t.Errorf("expected 'A', have %s", s)
	}
	if s := charLabel(0x0A); s != "U+000A" {
		t.Errorf("expected U+000A, have %s", s)
	}
}
