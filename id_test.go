package kertas

import "testing"

func TestNewIDUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Error("expected unique ids")
	}
	if len(a) != 36 {
		t.Errorf("expected uuid format, got %q", a)
	}
}

func TestChunkIDDeterministic(t *testing.T) {
	if got := ChunkID(ClassPolicy, 0); got != "policy_000" {
		t.Errorf("got %q", got)
	}
	if got := ChunkID(ClassClaim, 42); got != "claim_042" {
		t.Errorf("got %q", got)
	}
	if got := ChunkID(ClassFiling, 1234); got != "filing_1234" {
		t.Errorf("got %q", got)
	}
	if ChunkID(ClassPolicy, 7) != ChunkID(ClassPolicy, 7) {
		t.Error("expected stable ids")
	}
}
