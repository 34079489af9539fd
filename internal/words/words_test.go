package words

import "testing"

func TestInit_LoadsAllSupportedPools(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	stats := Stats()
	for _, l := range SupportedLengths {
		if stats[l] == 0 {
			t.Errorf("pool for length %d is empty", l)
		}
		for _, w := range Pool(l) {
			if len(w) != l {
				t.Fatalf("pool %d contains %q of wrong length", l, w)
			}
			if !isAlpha(w) {
				t.Fatalf("pool %d contains non-alphabetic %q", l, w)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cases := []struct {
		word string
		want bool
	}{
		{"crane", true},
		{"CRANE", true}, // lookup is case-insensitive
		{" crane ", true},
		{"tale", true},
		{"xqzyw", false},
		{"cranes", false}, // unsupported length
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValid(tc.word); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestRandomWord(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, l := range SupportedLengths {
		w, err := RandomWord(l)
		if err != nil {
			t.Fatalf("RandomWord(%d): %v", l, err)
		}
		if len(w) != l || !IsValid(w) {
			t.Errorf("RandomWord(%d) = %q, want a valid pool word", l, w)
		}
	}
	if _, err := RandomWord(7); err == nil {
		t.Error("RandomWord(7) should fail for an unsupported length")
	}
}

func TestSupportedLength(t *testing.T) {
	for _, l := range SupportedLengths {
		if !SupportedLength(l) {
			t.Errorf("SupportedLength(%d) = false", l)
		}
	}
	for _, l := range []int{0, 3, 6, -1} {
		if SupportedLength(l) {
			t.Errorf("SupportedLength(%d) = true", l)
		}
	}
}
