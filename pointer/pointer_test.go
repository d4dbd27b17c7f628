package pointer

import "testing"

func TestChildAndString(t *testing.T) {
	p := Pointer{}
	p = p.Child("properties").Child("name")
	if got, want := p.String(), "/properties/name"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	p2 := p.ChildIndex(3)
	if got, want := p2.String(), "/properties/name/3"; got != want {
		t.Fatalf("ChildIndex String() = %q, want %q", got, want)
	}

	// Original pointer must be untouched (Child must not mutate the receiver).
	if got, want := p.String(), "/properties/name"; got != want {
		t.Fatalf("original Pointer mutated: got %q, want %q", got, want)
	}
}

func TestStripLeadingHash(t *testing.T) {
	if got, want := StripLeadingHash("#/properties/a"), "/properties/a"; got != want {
		t.Fatalf("StripLeadingHash = %q, want %q", got, want)
	}
}
