package entry

import "testing"

func dates(ss ...string) []Date {
	out := make([]Date, 0, len(ss))
	for _, s := range ss {
		out = append(out, MustParseDate(s))
	}
	return out
}

func TestStreak(t *testing.T) {
	if got := Streak(nil); got != 0 {
		t.Fatalf("empty streak = %d", got)
	}
	if got := Streak(dates("2024-01-05")); got != 1 {
		t.Fatalf("single day streak = %d", got)
	}
	if got := Streak(dates("2024-01-05", "2024-01-04", "2024-01-03", "2024-01-01")); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestStreakGroups(t *testing.T) {
	groups := StreakGroups(dates("2024-01-05", "2024-01-04", "2024-01-01", "2023-12-31", "2023-12-20"))
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 2 || len(groups[2]) != 1 {
		t.Fatalf("unexpected group sizes: %v", groups)
	}
	if groups[1][0].String() != "2024-01-01" {
		t.Fatalf("unexpected group order: %v", groups)
	}
}
