package directory

import "testing"

func TestRankColor_Table(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"1":      "#c6efce",
		"2":      "#ffeb9c",
		"3":      "#ffc7ce",
		"4":      "#bdd7ee",
		"5":      "#eeeeee",
		"0":      "#eeeeee",
		"-1":     "#eeeeee",
		"2.0":    "#ffeb9c",
		" 3 ":    "#ffc7ce",
		"":       "#ffffff",
		"abc":    "#ffffff",
		"NaN":    "#ffffff",
		"Inf":    "#ffffff",
		"1e99":   "#ffffff",
		"rank 1": "#ffffff",
	}
	for in, want := range cases {
		if got := RankColor(in); got != want {
			t.Fatalf("RankColor(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestRankColor_AlwaysKnownCode(t *testing.T) {
	t.Parallel()

	known := map[string]bool{
		"#ffffff": true, "#c6efce": true, "#ffeb9c": true,
		"#ffc7ce": true, "#bdd7ee": true, "#eeeeee": true,
	}
	inputs := []string{"", " ", "x", "1.5", "-0", "9999999999", "0x10", "１", "\t4\n", "--2"}
	for _, in := range inputs {
		if got := RankColor(in); !known[got] {
			t.Fatalf("RankColor(%q)=%q is not a known code", in, got)
		}
	}
}
