package legislation

import (
	"github.com/shopspring/decimal"
)

// Parameters is the complete set of legislative parameters for one individual
// at one age under one legislation year. A nil block means the scheme does not
// apply to the individual; a non-nil block is always fully populated.
// Values are never mutated after Resolve returns them.
type Parameters struct {
	LegislationYear int `json:"legislation_year"`
	Age             int `json:"age"`

	// Vintages actually applied; each is <= LegislationYear
	MinimaVintage          int `json:"minima_vintage"`
	AverageWageVintage     int `json:"average_wage_vintage"`
	PublicVintage          int `json:"public_vintage"`
	EarlyRetirementVintage int `json:"early_retirement_vintage"`

	Private         *PrivateParameters `json:"private,omitempty"`
	Public          *PublicParameters  `json:"public,omitempty"`
	Special         *SpecialParameters `json:"special,omitempty"`
	EarlyRetirement []Tier             `json:"early_retirement"`
}

// PrivateParameters contains the general scheme parameters, shared by the
// affiliated complementary schemes
type PrivateParameters struct {
	TargetDuration     decimal.Decimal `json:"target_duration"`
	ProrationDuration  decimal.Decimal `json:"proration_duration"`
	AveragingYears     decimal.Decimal `json:"averaging_years"`
	FullRate           decimal.Decimal `json:"full_rate"`
	Reduction          decimal.Decimal `json:"reduction"`
	BonusTier1         decimal.Decimal `json:"bonus_tier_1"`
	BonusTier2         decimal.Decimal `json:"bonus_tier_2"`
	BonusTier3         decimal.Decimal `json:"bonus_tier_3"`
	MaxRate            decimal.Decimal `json:"max_rate"`
	MaxRateIncrement   decimal.Decimal `json:"max_rate_increment"`
	MinAge             decimal.Decimal `json:"min_age"`
	MaxAge             decimal.Decimal `json:"max_age"`
	ReductionCancelAge decimal.Decimal `json:"reduction_cancel_age"`
	BonusAge           decimal.Decimal `json:"bonus_age"`
	ProrationUncap     decimal.Decimal `json:"proration_uncap"`
}

// PublicParameters contains the public employment scheme parameters
type PublicParameters struct {
	TargetDuration     decimal.Decimal `json:"target_duration"`
	ProrationDuration  decimal.Decimal `json:"proration_duration"`
	Reduction          decimal.Decimal `json:"reduction"`
	Bonus              decimal.Decimal `json:"bonus"`
	ReductionCancelAge decimal.Decimal `json:"reduction_cancel_age"`
	MinPensionAge      decimal.Decimal `json:"min_pension_age"`
	MaxAge             decimal.Decimal `json:"max_age"`
	MinServiceYears    decimal.Decimal `json:"min_service_years"`
	MinActiveYears     decimal.Decimal `json:"min_active_years"`
	ActiveServiceYears decimal.Decimal `json:"active_service_years"`

	// Generic opening ages for the cohort, before individual adjustments
	SedentaryAge          decimal.Decimal `json:"sedentary_age"`
	ActiveAge             decimal.Decimal `json:"active_age"`
	ParentalDepartureOpen bool            `json:"parental_departure_open"`
	ParentalServiceYears  decimal.Decimal `json:"parental_service_years"`

	// Individual rights opening, set once the eligibility age is known
	MinAge            decimal.Decimal `json:"min_age"`
	RightsOpeningYear int             `json:"rights_opening_year"`
}

// SpecialParameters contains the fields only special-scheme members carry
type SpecialParameters struct {
	Scheme           string          `json:"scheme"`
	Vintage          int             `json:"vintage"`
	OpeningAge       decimal.Decimal `json:"opening_age"`
	ActiveOpeningAge decimal.Decimal `json:"active_opening_age"`
}

// Tier is one early-retirement rule set applicable to the individual
type Tier struct {
	RuleSet               int             `json:"rule_set"`
	ValidatedDuration     decimal.Decimal `json:"validated_duration"`
	ContributedDuration   decimal.Decimal `json:"contributed_duration"`
	CareerStartAgeCeiling decimal.Decimal `json:"career_start_age_ceiling"`
	OpeningAge            decimal.Decimal `json:"opening_age"`
}

// TierAt returns the tier for a rule set number (1..5) and whether it applies
func (p *Parameters) TierAt(ruleSet int) (Tier, bool) {
	for _, t := range p.EarlyRetirement {
		if t.RuleSet == ruleSet {
			return t, true
		}
	}
	return Tier{}, false
}

// Vintages returns every vintage marker the resolution applied
func (p *Parameters) Vintages() map[string]int {
	v := map[string]int{
		SchemeGeneral:         p.MinimaVintage,
		SchemeAveragingWindow: p.AverageWageVintage,
		SchemePublic:          p.PublicVintage,
		SchemeEarlyRetirement: p.EarlyRetirementVintage,
	}
	if p.Special != nil {
		v["special/"+p.Special.Scheme] = p.Special.Vintage
	}
	return v
}

// delta is what a resolution stage contributes. Nil parts leave the partial
// result untouched.
type delta struct {
	minimaVintage          *int
	averageWageVintage     *int
	publicVintage          *int
	earlyRetirementVintage *int

	private         *PrivateParameters
	public          *PublicParameters
	special         *SpecialParameters
	earlyRetirement []Tier
}

// merge returns a copy of p with the delta applied
func (p Parameters) merge(d delta) Parameters {
	if d.minimaVintage != nil {
		p.MinimaVintage = *d.minimaVintage
	}
	if d.averageWageVintage != nil {
		p.AverageWageVintage = *d.averageWageVintage
	}
	if d.publicVintage != nil {
		p.PublicVintage = *d.publicVintage
	}
	if d.earlyRetirementVintage != nil {
		p.EarlyRetirementVintage = *d.earlyRetirementVintage
	}
	if d.private != nil {
		p.Private = d.private
	}
	if d.public != nil {
		p.Public = d.public
	}
	if d.special != nil {
		p.Special = d.special
	}
	if d.earlyRetirement != nil {
		p.EarlyRetirement = d.earlyRetirement
	}
	return p
}
