package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"FirstName", "firstName"},
		{"LastName", "lastName"},
		{"Email", "email,omitempty"},
		{"PhotoURL", "photoUrl,omitempty"},
		{"Position", "position,omitempty"},
		{"CreatedAt", "createdAt"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestFullNameTrimsMissingParts(t *testing.T) {
	cases := []struct {
		p    Player
		want string
	}{
		{Player{FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{Player{FirstName: "Jane"}, "Jane"},
		{Player{LastName: "Doe"}, "Doe"},
	}
	for _, tc := range cases {
		if got := tc.p.FullName(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestLeaderboardCategoryValid(t *testing.T) {
	for _, c := range LeaderboardCategories {
		if !c.Valid() {
			t.Fatalf("expected %s to be valid", c)
		}
	}
	if LeaderboardCategory("tpg").Valid() {
		t.Fatalf("expected tpg to be rejected")
	}
}

func TestLeaderboardEntryRank(t *testing.T) {
	e := LeaderboardEntry{PPGRank: 1, RPGRank: 2, APGRank: 3, FGPctRank: 4}
	want := map[LeaderboardCategory]int{
		CategoryPoints:     1,
		CategoryRebounds:   2,
		CategoryAssists:    3,
		CategoryFieldGoals: 4,
		"unknown":          0,
	}
	for c, rank := range want {
		if got := e.Rank(c); got != rank {
			t.Fatalf("category %s: expected %d, got %d", c, rank, got)
		}
	}
}

func TestLeaderboardCategoryLabel(t *testing.T) {
	name, short := CategoryFieldGoals.Label()
	if name != "Field Goal %" || short != "FG%" {
		t.Fatalf("unexpected label %q/%q", name, short)
	}
	name, _ = LeaderboardCategory("bpg").Label()
	if name != "bpg" {
		t.Fatalf("expected raw fallback, got %q", name)
	}
}
