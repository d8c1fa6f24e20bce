package entity

import "testing"

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		r    rune
		want string
	}{
		{'&', "amp"},
		{'<', "lt"},
		{'>', "gt"},
		{'"', "quot"},
		{'\'', "apos"},
		{'§', "sect"},
		{'ß', "szlig"},
		{'€', "euro"},
		{'Ω', "Omega"},
		{'≠', "ne"},
		{'\u00a0', "nbsp"},
	}
	for _, tc := range tests {
		got, ok := Lookup(tc.r)
		if !ok {
			t.Fatalf("Lookup(%q): not found", tc.r)
		}
		if got != tc.want {
			t.Fatalf("Lookup(%q) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestLookupMissesPlainText(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{'a', 'Z', '0', ' ', '\t', '-', '/', '#'} {
		if name, ok := Lookup(r); ok {
			t.Fatalf("Lookup(%q) unexpectedly found %q", r, name)
		}
	}
}
