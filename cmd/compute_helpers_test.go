package cmd

import "testing"

func TestParseYearRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max int
		wantErr  bool
	}{
		{in: "2020:2030", min: 2020, max: 2030},
		{in: "2020-2030", min: 2020, max: 2030},
		{in: " 2020 : 2030 ", min: 2020, max: 2030},
		{in: "2025", min: 2025, max: 2025},
		{in: "2030:2020", wantErr: true},
		{in: "soon:2030", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, c := range cases {
		min, max, err := parseYearRange(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if min != c.min || max != c.max {
			t.Fatalf("%q: expected %d..%d, got %d..%d", c.in, c.min, c.max, min, max)
		}
	}
}
