package legislation

import (
	"fmt"
	"sort"
)

// resolveEarlyRetirement lists the long-career rule sets of the applicable
// vintage that cover the individual's cohort. It does not rank them: picking
// the most advantageous tier is left to the rights computation.
func resolveEarlyRetirement(req request, partial Parameters) (delta, error) {
	row, ok := latestVintage(req.tables.EarlyRetirement, req.year)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemeEarlyRetirement, Year: req.year}
	}

	tiers := make([]Tier, 0, len(row.Tiers))
	for _, rule := range row.Tiers {
		if !rule.AppliesTo(req.profile.BirthYear) {
			continue
		}
		validated, contributed := rule.ValidatedDuration, rule.ContributedDuration
		if rule.RelativeToProration {
			if partial.Private == nil {
				return delta{}, fmt.Errorf("rule set %d needs the general proration duration", rule.RuleSet)
			}
			validated = partial.Private.ProrationDuration.Add(validated)
			contributed = partial.Private.ProrationDuration.Add(contributed)
		}
		tiers = append(tiers, Tier{
			RuleSet:               rule.RuleSet,
			ValidatedDuration:     validated,
			ContributedDuration:   contributed,
			CareerStartAgeCeiling: rule.CareerStartAgeCeiling,
			OpeningAge:            rule.OpeningAge,
		})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].RuleSet < tiers[j].RuleSet })

	return delta{
		earlyRetirementVintage: &row.Year,
		earlyRetirement:        tiers,
	}, nil
}
