package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/pensionleg/internal/batch"
	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/rgehrsitz/pensionleg/internal/legislation"
	"github.com/shopspring/decimal"
)

const notApplicable = "n/a"

// TableFormatter formats results as styled console cards, one per profile
type TableFormatter struct{}

func (tf *TableFormatter) Name() string { return "table" }

// Format renders every result followed by a one-line summary
func (tf *TableFormatter) Format(results []batch.Result) ([]byte, error) {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(tf.formatResult(r))
		sb.WriteString("\n")
	}
	s := batch.Summarize(results)
	sb.WriteString(fmt.Sprintf("%d resolved, %d failed\n", s.Resolved, s.Failed))
	return []byte(sb.String()), nil
}

func (tf *TableFormatter) formatResult(r batch.Result) string {
	if r.Err != nil {
		title := TitleStyle.Render(fmt.Sprintf("Profile %s (age %d)", r.ProfileID, r.Age))
		return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, ErrorStyle.Render(r.Err.Error())))
	}

	p := r.Params
	lines := []string{
		TitleStyle.Render(fmt.Sprintf("Profile %s (age %d, legislation %d)", r.ProfileID, p.Age, p.LegislationYear)),
		row("General vintage", fmt.Sprint(p.MinimaVintage)),
		row("Averaging window vintage", fmt.Sprint(p.AverageWageVintage)),
		row("Public vintage", fmt.Sprint(p.PublicVintage)),
		row("Early retirement vintage", fmt.Sprint(p.EarlyRetirementVintage)),
	}

	lines = append(lines, SectionStyle.Render("General scheme"))
	if g := p.Private; g != nil {
		lines = append(lines,
			row("Target duration", quarters(g.TargetDuration)),
			row("Proration duration", quarters(g.ProrationDuration)),
			row("Proration uncap", quarters(g.ProrationUncap)),
			row("Averaging window", g.AveragingYears.String()+" years"),
			row("Full rate", percent(g.FullRate)),
			row("Reduction per year", percent(g.Reduction)),
			row("Bonus tiers", strings.Join([]string{percent(g.BonusTier1), percent(g.BonusTier2), percent(g.BonusTier3)}, " / ")),
			row("Max rate (+increment)", percent(g.MaxRate)+" (+"+percent(g.MaxRateIncrement)+")"),
			row("Min / max age", years(g.MinAge)+" / "+years(g.MaxAge)),
			row("Reduction cancel age", years(g.ReductionCancelAge)),
			row("Bonus age", years(g.BonusAge)),
		)
	} else {
		lines = append(lines, absent())
	}

	lines = append(lines, SectionStyle.Render("Public scheme"))
	if pub := p.Public; pub != nil {
		lines = append(lines,
			row("Target duration", quarters(pub.TargetDuration)),
			row("Proration duration", quarters(pub.ProrationDuration)),
			row("Reduction / bonus", percent(pub.Reduction)+" / "+percent(pub.Bonus)),
			row("Reduction cancel age", years(pub.ReductionCancelAge)),
			row("Guaranteed minimum age", years(pub.MinPensionAge)),
			row("Max age", years(pub.MaxAge)),
			row("Min service", pub.MinServiceYears.String()+" years"),
			row("Min / accrued active", pub.MinActiveYears.String()+" / "+pub.ActiveServiceYears.String()+" years"),
			row("Rights opening age", years(pub.MinAge)),
			row("Rights opening year", fmt.Sprint(pub.RightsOpeningYear)),
		)
	} else {
		lines = append(lines, absent())
	}

	lines = append(lines, SectionStyle.Render("Special scheme"))
	if sp := p.Special; sp != nil {
		lines = append(lines,
			row("Scheme", sp.Scheme),
			row("Vintage", fmt.Sprint(sp.Vintage)),
			row("Opening age (active)", years(sp.OpeningAge)+" ("+years(sp.ActiveOpeningAge)+")"),
		)
	} else {
		lines = append(lines, absent())
	}

	lines = append(lines, SectionStyle.Render("Early retirement"))
	for ruleSet := 1; ruleSet <= domain.MaxEarlyRetirementTiers; ruleSet++ {
		label := fmt.Sprintf("Rule set %d", ruleSet)
		tier, ok := p.TierAt(ruleSet)
		if !ok {
			lines = append(lines, LabelStyle.Render(label)+AbsentStyle.Render(notApplicable))
			continue
		}
		lines = append(lines, row(label, formatTier(tier)))
	}

	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatTier(t legislation.Tier) string {
	return fmt.Sprintf("%s validated, %s contributed, start <= %s, opens at %s",
		quarters(t.ValidatedDuration), quarters(t.ContributedDuration), years(t.CareerStartAgeCeiling), years(t.OpeningAge))
}

func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func absent() string {
	return AbsentStyle.Render(notApplicable)
}

func quarters(d decimal.Decimal) string { return d.String() + "q" }

func years(d decimal.Decimal) string { return d.String() }

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).String() + "%"
}
