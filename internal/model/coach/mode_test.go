package coach

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"career", Career},
		{"fitness", Fitness},
		{"finance", Finance},
		{"mental", Mental},
		{"general", General},
		{"", General},
		{"Career", General},
		{"astrology", General},
	}

	for _, tc := range cases {
		if got := ParseMode(tc.in); got != tc.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
