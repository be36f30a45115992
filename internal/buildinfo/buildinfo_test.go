package buildinfo

import "testing"

func TestString(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	want := "recordemit v1.2.3 (commit=abc123, date=2026-01-02)"
	if got := String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
