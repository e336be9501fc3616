package legislation

import (
	"fmt"
)

// resolveSpecial applies the special scheme named by the profile. Every
// overlapping public field is replaced by the scheme's own value; individuals
// outside special schemes are left untouched.
func resolveSpecial(req request, partial Parameters) (delta, error) {
	if !req.profile.IsSpecial() {
		return delta{}, nil
	}
	name := req.profile.SpecialScheme
	rows, ok := req.tables.Special[name]
	if !ok {
		return delta{}, fmt.Errorf("scheme %q: %w", name, ErrUnknownScheme)
	}
	row, ok := latestVintage(rows, req.year)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: "special/" + name, Year: req.year}
	}
	if partial.Public == nil {
		return delta{}, fmt.Errorf("special scheme %q resolved before the public scheme", name)
	}

	public := *partial.Public
	public.TargetDuration = row.TargetDuration
	public.ProrationDuration = row.ProrationDuration
	public.Reduction = row.Reduction
	public.Bonus = row.Bonus
	public.ReductionCancelAge = row.ReductionCancelAge
	public.MaxAge = row.MaxAge
	public.SedentaryAge = row.OpeningAge
	public.ActiveAge = row.ActiveOpeningAge
	public.MinAge = row.OpeningAge
	public.RightsOpeningYear = req.profile.BirthYear + int(row.OpeningAge.Ceil().IntPart())

	return delta{
		public: &public,
		special: &SpecialParameters{
			Scheme:           name,
			Vintage:          row.Year,
			OpeningAge:       row.OpeningAge,
			ActiveOpeningAge: row.ActiveOpeningAge,
		},
	}, nil
}
