package format

import (
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestDateAndTime(t *testing.T) {
	at := time.Date(2025, 2, 7, 19, 30, 0, 0, time.UTC)

	if got := Date(at); got != "Feb 7, 2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := Time(at); got != "7:30 PM" {
		t.Fatalf("unexpected time %q", got)
	}
	if got := DateTime(at); got != "Feb 7, 2025, 7:30 PM" {
		t.Fatalf("unexpected datetime %q", got)
	}
}

func TestStat(t *testing.T) {
	cases := []struct {
		v        *float64
		decimals int
		want     string
	}{
		{nil, 1, Missing},
		{ptr(22.5), 1, "22.5"},
		{ptr(7.0), 1, "7.0"},
		{ptr(1500.0), 0, "1,500"},
		{ptr(3.0), -2, "3"},
	}
	for _, tc := range cases {
		if got := Stat(tc.v, tc.decimals); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(nil); got != Missing {
		t.Fatalf("expected missing marker, got %q", got)
	}
	if got := Percentage(ptr(45.5)); got != "45.5%" {
		t.Fatalf("unexpected percentage %q", got)
	}
	if got := Percentage(ptr(0.0)); got != "0.0%" {
		t.Fatalf("expected a real zero to render, got %q", got)
	}
}

func TestPlayerName(t *testing.T) {
	if got := PlayerName("Jane", "Doe"); got != "Jane Doe" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestGameScore(t *testing.T) {
	if got := GameScore(nil, ptr(70)); got != Unscored {
		t.Fatalf("expected TBD without home score, got %q", got)
	}
	if got := GameScore(ptr(70), nil); got != Unscored {
		t.Fatalf("expected TBD without away score, got %q", got)
	}
	if got := GameScore(ptr(72), ptr(68)); got != "72 - 68" {
		t.Fatalf("unexpected score %q", got)
	}
}
