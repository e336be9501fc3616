package domain

import (
	"github.com/shopspring/decimal"
)

// MaxEarlyRetirementTiers is the number of alternative early-retirement rule sets a vintage may define
const MaxEarlyRetirementTiers = 5

// LegislativeTables contains the raw, date-indexed policy values of every scheme.
// It is loaded once (see config.InputParser) and must not be mutated afterwards.
type LegislativeTables struct {
	Metadata        TableMetadata                     `yaml:"metadata" json:"metadata"`
	General         []GeneralSchemeVintage            `yaml:"general" json:"general"`
	AveragingWindow []AveragingWindowVintage          `yaml:"averaging_window" json:"averaging_window"`
	Public          []PublicSchemeVintage             `yaml:"public" json:"public"`
	Special         map[string][]SpecialSchemeVintage `yaml:"special,omitempty" json:"special,omitempty"`
	EarlyRetirement []EarlyRetirementVintage          `yaml:"early_retirement" json:"early_retirement"`
}

// TableMetadata contains information about the legislative data
type TableMetadata struct {
	Source      string `yaml:"source" json:"source"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// GeneralSchemeVintage contains the general (private sector) scheme rules enacted in a given year
type GeneralSchemeVintage struct {
	Year              int                 `yaml:"year" json:"year"`
	TargetDuration    decimal.Decimal     `yaml:"target_duration" json:"target_duration"`       // quarters
	ProrationDuration decimal.Decimal     `yaml:"proration_duration" json:"proration_duration"` // quarters
	FullRate          decimal.Decimal     `yaml:"full_rate" json:"full_rate"`
	Reduction         decimal.Decimal     `yaml:"reduction" json:"reduction"` // per missing year
	BonusTier1        decimal.Decimal     `yaml:"bonus_tier_1" json:"bonus_tier_1"`
	BonusTier2        decimal.Decimal     `yaml:"bonus_tier_2" json:"bonus_tier_2"`
	BonusTier3        decimal.Decimal     `yaml:"bonus_tier_3" json:"bonus_tier_3"`
	MaxRate           decimal.Decimal     `yaml:"max_rate" json:"max_rate"`
	MaxRateIncrement  decimal.Decimal     `yaml:"max_rate_increment" json:"max_rate_increment"`
	ProrationUncap    decimal.Decimal     `yaml:"proration_uncap" json:"proration_uncap"` // quarters beyond the reference
	Cohorts           []GeneralCohortRule `yaml:"cohorts" json:"cohorts"`
}

// GeneralCohortRule contains the general scheme ages that depend on the birth cohort
type GeneralCohortRule struct {
	BirthYear          int              `yaml:"birth_year" json:"birth_year"`
	MinAge             decimal.Decimal  `yaml:"min_age" json:"min_age"`
	MaxAge             decimal.Decimal  `yaml:"max_age" json:"max_age"`
	ReductionCancelAge decimal.Decimal  `yaml:"reduction_cancel_age" json:"reduction_cancel_age"`
	BonusAge           decimal.Decimal  `yaml:"bonus_age" json:"bonus_age"`
	TargetDuration     *decimal.Decimal `yaml:"target_duration,omitempty" json:"target_duration,omitempty"`
}

// AveragingWindowVintage contains the number of best years averaged into the reference wage
type AveragingWindowVintage struct {
	Year  int             `yaml:"year" json:"year"`
	Years decimal.Decimal `yaml:"years" json:"years"`
}

// PublicSchemeVintage contains the public employment scheme rules enacted in a given year
type PublicSchemeVintage struct {
	Year                  int                `yaml:"year" json:"year"`
	TargetDuration        decimal.Decimal    `yaml:"target_duration" json:"target_duration"`
	ProrationDuration     decimal.Decimal    `yaml:"proration_duration" json:"proration_duration"`
	Reduction             decimal.Decimal    `yaml:"reduction" json:"reduction"`
	Bonus                 decimal.Decimal    `yaml:"bonus" json:"bonus"`
	MaxAge                decimal.Decimal    `yaml:"max_age" json:"max_age"`
	MinServiceYears       decimal.Decimal    `yaml:"min_service_years" json:"min_service_years"`
	MinActiveYears        decimal.Decimal    `yaml:"min_active_years" json:"min_active_years"`
	ParentalDepartureOpen bool               `yaml:"parental_departure_open" json:"parental_departure_open"`
	ParentalServiceYears  decimal.Decimal    `yaml:"parental_service_years" json:"parental_service_years"` // service a mother of three needs to leave early
	Cohorts               []PublicCohortRule `yaml:"cohorts" json:"cohorts"`
}

// PublicCohortRule contains the public scheme ages that depend on the birth cohort
type PublicCohortRule struct {
	BirthYear          int             `yaml:"birth_year" json:"birth_year"`
	SedentaryAge       decimal.Decimal `yaml:"sedentary_age" json:"sedentary_age"`
	ActiveAge          decimal.Decimal `yaml:"active_age" json:"active_age"`
	ReductionCancelAge decimal.Decimal `yaml:"reduction_cancel_age" json:"reduction_cancel_age"`
	MinPensionAge      decimal.Decimal `yaml:"min_pension_age" json:"min_pension_age"`
}

// SpecialSchemeVintage contains the rules of one special scheme enacted in a given year.
// Every field replaces its public-scheme counterpart for affiliated individuals.
type SpecialSchemeVintage struct {
	Year               int             `yaml:"year" json:"year"`
	TargetDuration     decimal.Decimal `yaml:"target_duration" json:"target_duration"`
	ProrationDuration  decimal.Decimal `yaml:"proration_duration" json:"proration_duration"`
	Reduction          decimal.Decimal `yaml:"reduction" json:"reduction"`
	Bonus              decimal.Decimal `yaml:"bonus" json:"bonus"`
	OpeningAge         decimal.Decimal `yaml:"opening_age" json:"opening_age"`
	ActiveOpeningAge   decimal.Decimal `yaml:"active_opening_age" json:"active_opening_age"`
	ReductionCancelAge decimal.Decimal `yaml:"reduction_cancel_age" json:"reduction_cancel_age"`
	MaxAge             decimal.Decimal `yaml:"max_age" json:"max_age"`
}

// EarlyRetirementVintage contains the long-career early retirement rule sets enacted in a given year
type EarlyRetirementVintage struct {
	Year  int                   `yaml:"year" json:"year"`
	Tiers []EarlyRetirementRule `yaml:"tiers" json:"tiers"`
}

// EarlyRetirementRule is one alternative set of conditions for early retirement.
// When RelativeToProration is set, both durations are offsets added to the
// general scheme proration duration of the individual.
type EarlyRetirementRule struct {
	RuleSet               int             `yaml:"rule_set" json:"rule_set"` // 1..MaxEarlyRetirementTiers
	FromBirthYear         *int            `yaml:"from_birth_year,omitempty" json:"from_birth_year,omitempty"`
	ToBirthYear           *int            `yaml:"to_birth_year,omitempty" json:"to_birth_year,omitempty"`
	ValidatedDuration     decimal.Decimal `yaml:"validated_duration" json:"validated_duration"`
	ContributedDuration   decimal.Decimal `yaml:"contributed_duration" json:"contributed_duration"`
	CareerStartAgeCeiling decimal.Decimal `yaml:"career_start_age_ceiling" json:"career_start_age_ceiling"`
	OpeningAge            decimal.Decimal `yaml:"opening_age" json:"opening_age"`
	RelativeToProration   bool            `yaml:"relative_to_proration,omitempty" json:"relative_to_proration,omitempty"`
}

// AppliesTo reports whether the rule set covers the given birth cohort
func (r EarlyRetirementRule) AppliesTo(birthYear int) bool {
	if r.FromBirthYear != nil && birthYear < *r.FromBirthYear {
		return false
	}
	if r.ToBirthYear != nil && birthYear > *r.ToBirthYear {
		return false
	}
	return true
}

// VintageYear implementations let rows of every scheme share the same lookup

func (v GeneralSchemeVintage) VintageYear() int   { return v.Year }
func (v AveragingWindowVintage) VintageYear() int { return v.Year }
func (v PublicSchemeVintage) VintageYear() int    { return v.Year }
func (v SpecialSchemeVintage) VintageYear() int   { return v.Year }
func (v EarlyRetirementVintage) VintageYear() int { return v.Year }

func (c GeneralCohortRule) CohortYear() int { return c.BirthYear }
func (c PublicCohortRule) CohortYear() int  { return c.BirthYear }

// EarliestVintage returns the earliest year defined by any scheme table, and
// false when no table defines any year
func (t *LegislativeTables) EarliestVintage() (int, bool) {
	earliest, found := 0, false
	consider := func(year int) {
		if !found || year < earliest {
			earliest, found = year, true
		}
	}
	for _, v := range t.General {
		consider(v.Year)
	}
	for _, v := range t.AveragingWindow {
		consider(v.Year)
	}
	for _, v := range t.Public {
		consider(v.Year)
	}
	for _, rows := range t.Special {
		for _, v := range rows {
			consider(v.Year)
		}
	}
	for _, v := range t.EarlyRetirement {
		consider(v.Year)
	}
	return earliest, found
}
