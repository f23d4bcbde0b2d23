package address

import "testing"

func TestGroupContains(t *testing.T) {
	line := LineGroup(1, 2)
	page := PageGroup(1)
	all := AllGroup()

	samples := []Address{
		New(0, 0, 0), New(1, 0, 0), New(1, 2, 0), New(1, 2, 255),
		New(1, 3, 0), New(2, 2, 2), Max(),
	}
	for _, a := range samples {
		if got, want := line.Contains(a), a.Page == 1 && a.Line == 2; got != want {
			t.Errorf("line.Contains(%s) = %v", a, got)
		}
		if got, want := page.Contains(a), a.Page == 1; got != want {
			t.Errorf("page.Contains(%s) = %v", a, got)
		}
		if !all.Contains(a) {
			t.Errorf("all.Contains(%s) = false", a)
		}
	}
}

func TestGroupSelectionMatchesContains(t *testing.T) {
	groups := []Group{
		LineGroup(1, 2),
		LineGroup(1, 255),
		LineGroup(MaxPages-1, 255),
		PageGroup(4),
		PageGroup(MaxPages - 1),
		AllGroup(),
	}
	samples := []Address{
		{}, New(1, 2, 0), New(1, 2, 255), New(1, 3, 0), New(1, 255, 255),
		New(2, 0, 0), New(4, 0, 0), New(4, 255, 255), New(5, 0, 0),
		New(MaxPages-1, 255, 0), Max(),
	}
	for _, g := range groups {
		sel := g.Selection()
		if !sel.Valid() {
			t.Fatalf("%s: invalid selection %v", g, sel)
		}
		if !sel.Contains(g.BaseAddress()) {
			t.Errorf("%s: selection misses base address", g)
		}
		for _, a := range samples {
			if sel.Contains(a) != g.Contains(a) {
				t.Errorf("%s: selection/contains disagree on %s", g, a)
			}
		}
	}
}

func TestGroupBaseAddress(t *testing.T) {
	if got := LineGroup(3, 4).BaseAddress(); got != New(3, 4, 0) {
		t.Errorf("line base = %s", got)
	}
	if got := PageGroup(3).BaseAddress(); got != New(3, 0, 0) {
		t.Errorf("page base = %s", got)
	}
	if got := AllGroup().BaseAddress(); got != (Address{}) {
		t.Errorf("all base = %s", got)
	}
	if New(7, 8, 9).LineGroup() != LineGroup(7, 8) || New(7, 8, 9).PageGroup() != PageGroup(7) {
		t.Errorf("address group helpers disagree")
	}
}

func TestParseGroup(t *testing.T) {
	tests := map[string]Group{
		"*":       AllGroup(),
		"*:*:*":   AllGroup(),
		"0A:*:*":  PageGroup(10),
		"01:0F:*": LineGroup(1, 15),
	}
	for in, want := range tests {
		got, err := ParseGroup(in)
		if err != nil {
			t.Fatalf("ParseGroup(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseGroup(%q) = %s, want %s", in, got, want)
		}
		if round, err := ParseGroup(got.Hex()); err != nil || round != got {
			t.Errorf("hex round trip of %s failed: %v %v", got, round, err)
		}
	}
	if _, err := ParseGroup("1:2:3"); err == nil {
		t.Errorf("expected error for address form")
	}
}
