package domain

import (
	"github.com/shopspring/decimal"
)

// Category is the employment category that decides which schemes apply to an individual
type Category string

const (
	CategoryPrivate         Category = "private"
	CategoryPublicSedentary Category = "public_sedentary"
	CategoryPublicActive    Category = "public_active"
	CategorySpecial         Category = "special"
)

// Sex of the individual
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Profile represents the read-only attributes of one simulated individual
// that legislation resolution depends on
type Profile struct {
	ID            string   `yaml:"id" json:"id"`
	BirthYear     int      `yaml:"birth_year" json:"birth_year"`
	Sex           Sex      `yaml:"sex" json:"sex"`
	Category      Category `yaml:"category" json:"category"`
	SpecialScheme string   `yaml:"special_scheme,omitempty" json:"special_scheme,omitempty"`
	Children      int      `yaml:"children,omitempty" json:"children,omitempty"`

	// Career milestones, in years of age
	CareerStartAge decimal.Decimal  `yaml:"career_start_age" json:"career_start_age"`
	CareerEndAge   *decimal.Decimal `yaml:"career_end_age,omitempty" json:"career_end_age,omitempty"`

	// Accrued public-sector service, in years
	PublicServiceYears decimal.Decimal `yaml:"public_service_years,omitempty" json:"public_service_years,omitempty"`
	ActiveServiceYears decimal.Decimal `yaml:"active_service_years,omitempty" json:"active_service_years,omitempty"`

	// Optional evaluation age used by batch runs; nil means derive it from the legislation year
	Age *int `yaml:"age,omitempty" json:"age,omitempty"`
}

// IsPublic reports whether the individual belongs to the public employment scheme
func (p *Profile) IsPublic() bool {
	return p.Category == CategoryPublicSedentary || p.Category == CategoryPublicActive
}

// IsSpecial reports whether the individual is affiliated to a special scheme
func (p *Profile) IsSpecial() bool {
	return p.Category == CategorySpecial
}

// EvaluationAge returns the explicit evaluation age when set, otherwise the age reached in year
func (p *Profile) EvaluationAge(year int) int {
	if p.Age != nil {
		return *p.Age
	}
	return year - p.BirthYear
}

// IsParentOfThree reports whether the individual is a mother of at least three children
func (p *Profile) IsParentOfThree() bool {
	return p.Sex == SexFemale && p.Children >= 3
}
