package info

import (
	"bytes"
	"strings"
	"testing"
)

func TestDistanceText(t *testing.T) {
	tests := []struct {
		r    float32
		want string
	}{
		{25, "Orbital distance: 25.0 units"},
		{12.34, "Orbital distance: 12.3 units"},
		{0, "N/A"},
	}
	for _, tt := range tests {
		if got := DistanceText(tt.r); got != tt.want {
			t.Errorf("DistanceText(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	if c.Visible() {
		t.Fatalf("console starts visible")
	}

	c.SetFields(Fields{
		Header:   Header,
		Name:     "Mars",
		Distance: DistanceText(45),
		Details:  "Red.",
		Accent:   "#ff6347",
	})
	c.Show()
	if !c.Visible() {
		t.Errorf("Show did not make the panel visible")
	}
	out := buf.String()
	for _, s := range []string{"SELECTED BODY", "Mars", "45.0", "Red."} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q: %s", s, out)
		}
	}

	buf.Reset()
	c.Hide()
	if c.Visible() {
		t.Errorf("Hide left the panel visible")
	}
	if !strings.Contains(buf.String(), Cleared) {
		t.Errorf("hide not reported: %q", buf.String())
	}
	buf.Reset()
	c.Hide()
	if buf.Len() != 0 {
		t.Errorf("second hide printed %q", buf.String())
	}

	buf.Reset()
	c.SetControlHint("orbital")
	c.SetControlHint("orbital")
	if n := strings.Count(buf.String(), "orbital"); n != 1 {
		t.Errorf("hint printed %d times, want 1", n)
	}
}
