package legislation

import (
	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/shopspring/decimal"
)

// RightsOpeningAge returns the age at which a public-scheme member may open
// pension rights. The cohort's sedentary age is lowered to the active-category
// age once the minimum active service is accrued, and mothers of three
// children in the public scheme may leave once they hold the parental service
// duration, while the vintage still allows it. That duration is distinct from
// the minimum service for any public pension.
func RightsOpeningAge(profile domain.Profile, public PublicParameters) decimal.Decimal {
	age := public.SedentaryAge

	qualifiesActive := public.MinActiveYears.IsPositive() &&
		profile.ActiveServiceYears.GreaterThanOrEqual(public.MinActiveYears)
	if qualifiesActive || (profile.Category == domain.CategoryPublicActive && public.MinActiveYears.IsZero()) {
		age = decimal.Min(age, public.ActiveAge)
	}

	if public.ParentalDepartureOpen && profile.IsPublic() && profile.IsParentOfThree() &&
		public.ParentalServiceYears.IsPositive() &&
		profile.PublicServiceYears.GreaterThanOrEqual(public.ParentalServiceYears) {
		age = decimal.Min(age, profile.CareerStartAge.Add(public.ParentalServiceYears))
	}

	return age
}

// resolveEligibility applies the individual rights-opening age to the public block
func resolveEligibility(req request, partial Parameters) (delta, error) {
	if partial.Public == nil {
		return delta{}, nil
	}
	public := *partial.Public
	public.MinAge = RightsOpeningAge(*req.profile, public)
	public.RightsOpeningYear = req.profile.BirthYear + int(public.MinAge.Ceil().IntPart())
	return delta{public: &public}, nil
}
