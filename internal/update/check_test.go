package update

import "testing"

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.1.0", "0.1.0", false},
		{"0.1.0", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
		{"0.1.10", "0.1.9", true},
		{"0.1", "0.1.0", false},
	}
	for _, tt := range tests {
		r := &Result{Latest: tt.latest, Current: tt.current}
		if got := r.NeedsUpdate(); got != tt.want {
			t.Errorf("NeedsUpdate(%s vs %s) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

func TestNeedsUpdateNilResult(t *testing.T) {
	var r *Result
	if r.NeedsUpdate() {
		t.Error("nil result should never need an update")
	}
}
