package extract

import "testing"

func TestValueCrore(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Rs. 654.03 Crore", 654.03},
		{"Rs 500 Cr", 500},
		{"INR 120 crore order", 120},
		{"order worth 1,250 Crores", 1250},
		{"3.5 Million", 0.35},
		{"10 Mn contract", 1},
		{"no numbers here", 0},
		{"", 0},
		{"board meeting on 12 January", 0},
	}

	for _, c := range cases {
		if got := ValueCrore(c.text); got != c.want {
			t.Errorf("ValueCrore(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestValueCroreUnitPrecedence(t *testing.T) {
	// When both units are mentioned, the crore pattern wins regardless of
	// position in the text.
	got := ValueCrore("deal valued at 10 million, approximately 1 crore")
	if got != 1 {
		t.Errorf("expected crore match to win, got %v", got)
	}
}
