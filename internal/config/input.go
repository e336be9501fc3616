package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ProfileSet is the document format of a profiles file
type ProfileSet struct {
	Profiles []domain.Profile `yaml:"profiles" json:"profiles"`
}

// InputParser handles parsing of legislative tables and individual profiles
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadTablesFromFile loads legislative tables from a YAML file
func (ip *InputParser) LoadTablesFromFile(filename string) (*domain.LegislativeTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseTables(data)
}

// ParseTables parses and validates legislative tables from YAML
func (ip *InputParser) ParseTables(data []byte) (*domain.LegislativeTables, error) {
	var tables domain.LegislativeTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateTables(&tables); err != nil {
		return nil, fmt.Errorf("table validation failed: %w", err)
	}
	return &tables, nil
}

// LoadProfilesFromFile loads individual profiles from a YAML file
func (ip *InputParser) LoadProfilesFromFile(filename string) ([]domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseProfiles(data)
}

// ParseProfiles parses and validates a profiles document
func (ip *InputParser) ParseProfiles(data []byte) ([]domain.Profile, error) {
	var set ProfileSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(set.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles provided")
	}
	seen := make(map[string]bool, len(set.Profiles))
	for i := range set.Profiles {
		p := &set.Profiles[i]
		if err := ip.ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("profile %d (%s) validation failed: %w", i, p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate profile id: %s", p.ID)
		}
		seen[p.ID] = true
	}
	return set.Profiles, nil
}

// ValidateProfile validates a single profile
func (ip *InputParser) ValidateProfile(p *domain.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.BirthYear <= 0 {
		return fmt.Errorf("birth year must be positive")
	}
	switch p.Sex {
	case domain.SexMale, domain.SexFemale:
	default:
		return fmt.Errorf("sex must be 'male' or 'female'")
	}
	switch p.Category {
	case domain.CategoryPrivate, domain.CategoryPublicSedentary, domain.CategoryPublicActive:
		if p.SpecialScheme != "" {
			return fmt.Errorf("special scheme set for non-special category %s", p.Category)
		}
	case domain.CategorySpecial:
		if p.SpecialScheme == "" {
			return fmt.Errorf("special scheme is required for the special category")
		}
	default:
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.Children < 0 {
		return fmt.Errorf("children cannot be negative")
	}
	if !p.CareerStartAge.IsPositive() {
		return fmt.Errorf("career start age is required and must be positive")
	}
	if p.CareerEndAge != nil && p.CareerEndAge.LessThan(p.CareerStartAge) {
		return fmt.Errorf("career end age cannot precede career start age")
	}
	if p.PublicServiceYears.LessThan(decimal.Zero) || p.ActiveServiceYears.LessThan(decimal.Zero) {
		return fmt.Errorf("service durations cannot be negative")
	}
	if p.ActiveServiceYears.GreaterThan(p.PublicServiceYears) {
		return fmt.Errorf("active service cannot exceed public service")
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	return nil
}

// ValidateTables validates loaded legislative tables
func (ip *InputParser) ValidateTables(t *domain.LegislativeTables) error {
	if len(t.General) == 0 {
		return fmt.Errorf("general scheme table is empty")
	}
	if len(t.AveragingWindow) == 0 {
		return fmt.Errorf("averaging window table is empty")
	}
	if len(t.Public) == 0 {
		return fmt.Errorf("public scheme table is empty")
	}
	if len(t.EarlyRetirement) == 0 {
		return fmt.Errorf("early retirement table is empty")
	}

	if err := uniqueYears(t.General, "general"); err != nil {
		return err
	}
	for _, v := range t.General {
		if err := ip.validateGeneral(&v); err != nil {
			return fmt.Errorf("general vintage %d: %w", v.Year, err)
		}
	}

	if err := uniqueYears(t.AveragingWindow, "averaging window"); err != nil {
		return err
	}
	for _, v := range t.AveragingWindow {
		if !v.Years.IsPositive() {
			return fmt.Errorf("averaging window vintage %d: years must be positive", v.Year)
		}
	}

	if err := uniqueYears(t.Public, "public"); err != nil {
		return err
	}
	for _, v := range t.Public {
		if err := ip.validatePublic(&v); err != nil {
			return fmt.Errorf("public vintage %d: %w", v.Year, err)
		}
	}

	for name, rows := range t.Special {
		if len(rows) == 0 {
			return fmt.Errorf("special scheme %s has no vintage", name)
		}
		if err := uniqueYears(rows, "special scheme "+name); err != nil {
			return err
		}
		for _, v := range rows {
			if err := ip.validateSpecial(&v); err != nil {
				return fmt.Errorf("special scheme %s vintage %d: %w", name, v.Year, err)
			}
		}
	}

	if err := uniqueYears(t.EarlyRetirement, "early retirement"); err != nil {
		return err
	}
	for _, v := range t.EarlyRetirement {
		if err := ip.validateEarlyRetirement(&v); err != nil {
			return fmt.Errorf("early retirement vintage %d: %w", v.Year, err)
		}
	}

	return nil
}

func (ip *InputParser) validateGeneral(v *domain.GeneralSchemeVintage) error {
	if !v.TargetDuration.IsPositive() || !v.ProrationDuration.IsPositive() {
		return fmt.Errorf("target and proration durations must be positive")
	}
	for name, rate := range map[string]decimal.Decimal{
		"full rate":          v.FullRate,
		"reduction":          v.Reduction,
		"bonus tier 1":       v.BonusTier1,
		"bonus tier 2":       v.BonusTier2,
		"bonus tier 3":       v.BonusTier3,
		"max rate":           v.MaxRate,
		"max rate increment": v.MaxRateIncrement,
	} {
		if err := validateRate(name, rate); err != nil {
			return err
		}
	}
	if v.ProrationUncap.LessThan(decimal.Zero) {
		return fmt.Errorf("proration uncap cannot be negative")
	}
	if len(v.Cohorts) == 0 {
		return fmt.Errorf("at least one cohort rule is required")
	}
	seen := make(map[int]bool, len(v.Cohorts))
	for _, c := range v.Cohorts {
		if seen[c.BirthYear] {
			return fmt.Errorf("duplicate cohort %d", c.BirthYear)
		}
		seen[c.BirthYear] = true
		if !c.MinAge.IsPositive() || c.MaxAge.LessThan(c.MinAge) {
			return fmt.Errorf("cohort %d: ages must satisfy 0 < min age <= max age", c.BirthYear)
		}
		if c.ReductionCancelAge.LessThan(c.MinAge) || c.BonusAge.LessThan(c.MinAge) {
			return fmt.Errorf("cohort %d: reduction cancellation and bonus ages cannot precede the minimum age", c.BirthYear)
		}
		if c.TargetDuration != nil && !c.TargetDuration.IsPositive() {
			return fmt.Errorf("cohort %d: target duration must be positive", c.BirthYear)
		}
	}
	return nil
}

func (ip *InputParser) validatePublic(v *domain.PublicSchemeVintage) error {
	if !v.TargetDuration.IsPositive() || !v.ProrationDuration.IsPositive() {
		return fmt.Errorf("target and proration durations must be positive")
	}
	if err := validateRate("reduction", v.Reduction); err != nil {
		return err
	}
	if err := validateRate("bonus", v.Bonus); err != nil {
		return err
	}
	if !v.MaxAge.IsPositive() {
		return fmt.Errorf("max age must be positive")
	}
	if v.MinServiceYears.LessThan(decimal.Zero) || v.MinActiveYears.LessThan(decimal.Zero) || v.ParentalServiceYears.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum service durations cannot be negative")
	}
	if v.ParentalDepartureOpen && !v.ParentalServiceYears.IsPositive() {
		return fmt.Errorf("parental service duration must be positive while parental departure is open")
	}
	if len(v.Cohorts) == 0 {
		return fmt.Errorf("at least one cohort rule is required")
	}
	seen := make(map[int]bool, len(v.Cohorts))
	for _, c := range v.Cohorts {
		if seen[c.BirthYear] {
			return fmt.Errorf("duplicate cohort %d", c.BirthYear)
		}
		seen[c.BirthYear] = true
		if !c.SedentaryAge.IsPositive() || !c.ActiveAge.IsPositive() {
			return fmt.Errorf("cohort %d: opening ages must be positive", c.BirthYear)
		}
		if c.ActiveAge.GreaterThan(c.SedentaryAge) {
			return fmt.Errorf("cohort %d: active age cannot exceed sedentary age", c.BirthYear)
		}
		if c.ReductionCancelAge.LessThan(c.SedentaryAge) || !c.MinPensionAge.IsPositive() {
			return fmt.Errorf("cohort %d: invalid reduction cancellation or guaranteed minimum age", c.BirthYear)
		}
	}
	return nil
}

func (ip *InputParser) validateSpecial(v *domain.SpecialSchemeVintage) error {
	if !v.TargetDuration.IsPositive() || !v.ProrationDuration.IsPositive() {
		return fmt.Errorf("target and proration durations must be positive")
	}
	if err := validateRate("reduction", v.Reduction); err != nil {
		return err
	}
	if err := validateRate("bonus", v.Bonus); err != nil {
		return err
	}
	if !v.OpeningAge.IsPositive() || !v.ActiveOpeningAge.IsPositive() {
		return fmt.Errorf("opening ages must be positive")
	}
	if v.MaxAge.LessThan(v.OpeningAge) || v.ReductionCancelAge.LessThan(v.OpeningAge) {
		return fmt.Errorf("max and reduction cancellation ages cannot precede the opening age")
	}
	return nil
}

func (ip *InputParser) validateEarlyRetirement(v *domain.EarlyRetirementVintage) error {
	if len(v.Tiers) > domain.MaxEarlyRetirementTiers {
		return fmt.Errorf("at most %d rule sets allowed, got %d", domain.MaxEarlyRetirementTiers, len(v.Tiers))
	}
	seen := make(map[int]bool, len(v.Tiers))
	for _, r := range v.Tiers {
		if r.RuleSet < 1 || r.RuleSet > domain.MaxEarlyRetirementTiers {
			return fmt.Errorf("rule set %d out of range 1..%d", r.RuleSet, domain.MaxEarlyRetirementTiers)
		}
		if seen[r.RuleSet] {
			return fmt.Errorf("duplicate rule set %d", r.RuleSet)
		}
		seen[r.RuleSet] = true
		if r.FromBirthYear != nil && r.ToBirthYear != nil && *r.FromBirthYear > *r.ToBirthYear {
			return fmt.Errorf("rule set %d: cohort window is empty", r.RuleSet)
		}
		if r.RelativeToProration {
			if r.ValidatedDuration.LessThan(decimal.Zero) || r.ContributedDuration.LessThan(decimal.Zero) {
				return fmt.Errorf("rule set %d: duration offsets cannot be negative", r.RuleSet)
			}
		} else if !r.ValidatedDuration.IsPositive() || !r.ContributedDuration.IsPositive() {
			return fmt.Errorf("rule set %d: durations must be positive", r.RuleSet)
		}
		if !r.CareerStartAgeCeiling.IsPositive() || !r.OpeningAge.IsPositive() {
			return fmt.Errorf("rule set %d: ages must be positive", r.RuleSet)
		}
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1", name)
	}
	return nil
}

type vintaged interface {
	VintageYear() int
}

func uniqueYears[T vintaged](rows []T, table string) error {
	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		y := r.VintageYear()
		if y <= 0 {
			return fmt.Errorf("%s table: vintage year must be positive, got %d", table, y)
		}
		if seen[y] {
			return fmt.Errorf("%s table: duplicate vintage %d", table, y)
		}
		seen[y] = true
	}
	return nil
}
