package legislation

// resolvePrivate resolves the general scheme parameters. The averaging window
// follows its own schedule and gets its own vintage marker.
func resolvePrivate(req request, _ Parameters) (delta, error) {
	row, ok := latestVintage(req.tables.General, req.year)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemeGeneral, Year: req.year}
	}
	window, ok := latestVintage(req.tables.AveragingWindow, req.year)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemeAveragingWindow, Year: req.year}
	}
	cohort, ok := cohortRule(row.Cohorts, req.profile.BirthYear)
	if !ok {
		return delta{}, &MissingVintageError{Scheme: SchemeGeneral, Year: req.year, BirthYear: req.profile.BirthYear}
	}

	target := row.TargetDuration
	if cohort.TargetDuration != nil {
		target = *cohort.TargetDuration
	}

	return delta{
		minimaVintage:      &row.Year,
		averageWageVintage: &window.Year,
		private: &PrivateParameters{
			TargetDuration:     target,
			ProrationDuration:  row.ProrationDuration,
			AveragingYears:     window.Years,
			FullRate:           row.FullRate,
			Reduction:          row.Reduction,
			BonusTier1:         row.BonusTier1,
			BonusTier2:         row.BonusTier2,
			BonusTier3:         row.BonusTier3,
			MaxRate:            row.MaxRate,
			MaxRateIncrement:   row.MaxRateIncrement,
			MinAge:             cohort.MinAge,
			MaxAge:             cohort.MaxAge,
			ReductionCancelAge: cohort.ReductionCancelAge,
			BonusAge:           cohort.BonusAge,
			ProrationUncap:     row.ProrationUncap,
		},
	}, nil
}
