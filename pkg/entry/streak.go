package entry

// StreakGroups splits dates into runs of consecutive days. Dates must be
// sorted most recent first; each returned group keeps that order.
func StreakGroups(dates []Date) [][]Date {
	var groups [][]Date
	var current []Date
	for i, d := range dates {
		if i > 0 && dates[i-1].Add(-1) == d {
			current = append(current, d)
			continue
		}
		if len(current) > 0 {
			groups = append(groups, current)
		}
		current = []Date{d}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// Streak returns the length of the run of consecutive days ending at the
// most recent logged date. Dates must be sorted most recent first.
func Streak(dates []Date) int {
	groups := StreakGroups(dates)
	if len(groups) == 0 {
		return 0
	}
	return len(groups[0])
}
