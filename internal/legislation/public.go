package legislation

// resolvePublic resolves the public employment scheme parameters. Opening and
// guaranteed-minimum ages come from the cohort table, not the calendar year.
// The accrued active-category duration is read from the profile.
func resolvePublic(req request, _ Parameters) (delta, error) {
	row, ok := latestVintage(req.tables.Public, req.year)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemePublic, Year: req.year}
	}
	cohort, ok := cohortRule(row.Cohorts, req.profile.BirthYear)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemePublic, Year: req.year, BirthYear: req.profile.BirthYear}
	}

	return delta{
		publicVintage: &row.Year,
		public: &PublicParameters{
			TargetDuration:        row.TargetDuration,
			ProrationDuration:     row.ProrationDuration,
			Reduction:             row.Reduction,
			Bonus:                 row.Bonus,
			ReductionCancelAge:    cohort.ReductionCancelAge,
			MinPensionAge:         cohort.MinPensionAge,
			MaxAge:                row.MaxAge,
			MinServiceYears:       row.MinServiceYears,
			MinActiveYears:        row.MinActiveYears,
			ActiveServiceYears:    req.profile.ActiveServiceYears,
			SedentaryAge:          cohort.SedentaryAge,
			ActiveAge:             cohort.ActiveAge,
			ParentalDepartureOpen: row.ParentalDepartureOpen,
			ParentalServiceYears:  row.ParentalServiceYears,
			MinAge:                cohort.SedentaryAge,
			RightsOpeningYear:     req.profile.BirthYear + int(cohort.SedentaryAge.Ceil().IntPart()),
		},
	}, nil
}
