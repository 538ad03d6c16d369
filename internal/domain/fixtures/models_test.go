package fixtures

import "testing"

func TestStatusTag(t *testing.T) {
	cases := map[Status]StatusTag{
		"1H":   TagLive,
		"2H":   TagLive,
		"HT":   TagLive,
		"ET":   TagLive,
		"P":    TagLive,
		"LIVE": TagLive,
		"FT":   TagFinished,
		"AET":  TagFinished,
		"PEN":  TagFinished,
		"NS":   TagScheduled,
		"TBD":  TagScheduled,
		"PST":  TagOther,
		"CANC": TagOther,
		"ABD":  TagOther,
		"":     TagOther,
	}
	for status, want := range cases {
		if got := status.Tag(); got != want {
			t.Fatalf("status %q: expected %s, got %s", status, want, got)
		}
	}
}
