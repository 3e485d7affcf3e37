package main

import (
	"strings"
	"testing"

	"github.com/leterax/go-orrery/pkg/orbit"
)

func TestReportListsEveryBody(t *testing.T) {
	reg, err := orbit.NewRegistry(orbit.DefaultCatalog(), nil)
	if err != nil {
		t.Fatal(err)
	}
	reg.Advance(10)

	var b strings.Builder
	report(&b, reg, 10)
	out := b.String()

	if !strings.Contains(out, "Bodies after 10 ticks") {
		t.Errorf("missing header:\n%s", out)
	}
	for _, name := range []string{"Sun", "Mercury", "Earth", "Moon", "Neptune"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "(star)") {
		t.Errorf("star not marked:\n%s", out)
	}
}
