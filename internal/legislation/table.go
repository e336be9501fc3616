package legislation

// vintaged is a table row enacted in a given year
type vintaged interface {
	VintageYear() int
}

// cohortIndexed is a rule that applies from a given birth year onwards
type cohortIndexed interface {
	CohortYear() int
}

// latestVintage returns the row with the greatest year not after year.
// Rows do not need to be sorted.
func latestVintage[T vintaged](rows []T, year int) (T, bool) {
	var best T
	found := false
	for _, row := range rows {
		y := row.VintageYear()
		if y > year {
			continue
		}
		if !found || y > best.VintageYear() {
			best, found = row, true
		}
	}
	return best, found
}

// cohortRule returns the rule with the greatest birth year not after
// birthYear. Cohorts older than every rule get the earliest rule; there is no
// extrapolation backwards.
func cohortRule[T cohortIndexed](rules []T, birthYear int) (T, bool) {
	var best, earliest T
	found, seen := false, false
	for _, rule := range rules {
		y := rule.CohortYear()
		if !seen || y < earliest.CohortYear() {
			earliest, seen = rule, true
		}
		if y > birthYear {
			continue
		}
		if !found || y > best.CohortYear() {
			best, found = rule, true
		}
	}
	if found {
		return best, true
	}
	return earliest, seen
}
