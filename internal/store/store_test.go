package store

import "testing"

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID error: %v", err)
		}
		if !IsID(id) {
			t.Fatalf("generated id %q is not a valid id", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"ABCDEF0123456789abcdef01", true},
		{"507f1f77bcf86cd79943901", false},   // too short
		{"507f1f77bcf86cd7994390111", false}, // too long
		{"507f1f77bcf86cd79943901g", false},  // non-hex
		{"", false},
		{"not-an-id", false},
	}
	for _, tc := range tests {
		if got := IsID(tc.id); got != tc.want {
			t.Fatalf("IsID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
