package legislation

import (
	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func generalRow(year int, target string) domain.GeneralSchemeVintage {
	return domain.GeneralSchemeVintage{
		Year:              year,
		TargetDuration:    dec(target),
		ProrationDuration: dec(target),
		FullRate:          dec("0.5"),
		Reduction:         dec("0.05"),
		BonusTier1:        dec("0.0075"),
		BonusTier2:        dec("0.01"),
		BonusTier3:        dec("0.0125"),
		MaxRate:           dec("0.5"),
		MaxRateIncrement:  dec("0"),
		ProrationUncap:    dec("0"),
		Cohorts: []domain.GeneralCohortRule{
			{BirthYear: 1944, MinAge: dec("60"), MaxAge: dec("65"), ReductionCancelAge: dec("65"), BonusAge: dec("60")},
			{BirthYear: 1955, MinAge: dec("62"), MaxAge: dec("67"), ReductionCancelAge: dec("67"), BonusAge: dec("62"), TargetDuration: decPtr("166")},
		},
	}
}

func publicRow(year int, target, minService, minActive string, parental bool) domain.PublicSchemeVintage {
	return domain.PublicSchemeVintage{
		Year:                  year,
		TargetDuration:        dec(target),
		ProrationDuration:     dec(target),
		Reduction:             dec("0.0125"),
		Bonus:                 dec("0.0125"),
		MaxAge:                dec("65"),
		MinServiceYears:       dec(minService),
		MinActiveYears:        dec(minActive),
		ParentalDepartureOpen: parental,
		ParentalServiceYears:  dec("15"),
		Cohorts: []domain.PublicCohortRule{
			{BirthYear: 1940, SedentaryAge: dec("60"), ActiveAge: dec("55"), ReductionCancelAge: dec("60"), MinPensionAge: dec("60")},
			{BirthYear: 1955, SedentaryAge: dec("62"), ActiveAge: dec("57"), ReductionCancelAge: dec("67"), MinPensionAge: dec("67")},
		},
	}
}

// newFixtureTables returns tables with the following vintages:
// general 2003/2010, averaging window 1993/2008, public 2000/2005/2010,
// special "sncf" 2008, early retirement 2004/2012.
func newFixtureTables() *domain.LegislativeTables {
	return &domain.LegislativeTables{
		Metadata: domain.TableMetadata{Source: "fixture"},
		General: []domain.GeneralSchemeVintage{
			generalRow(2010, "165"),
			generalRow(2003, "160"),
		},
		AveragingWindow: []domain.AveragingWindowVintage{
			{Year: 1993, Years: dec("10")},
			{Year: 2008, Years: dec("25")},
		},
		Public: []domain.PublicSchemeVintage{
			publicRow(2000, "150", "15", "15", true),
			publicRow(2005, "160", "15", "15", true),
			publicRow(2010, "165", "2", "10", false),
		},
		Special: map[string][]domain.SpecialSchemeVintage{
			"sncf": {
				{
					Year:               2008,
					TargetDuration:     dec("164"),
					ProrationDuration:  dec("150"),
					Reduction:          dec("0.00625"),
					Bonus:              dec("0.0125"),
					OpeningAge:         dec("55"),
					ActiveOpeningAge:   dec("50"),
					ReductionCancelAge: dec("60"),
					MaxAge:             dec("65"),
				},
			},
		},
		EarlyRetirement: []domain.EarlyRetirementVintage{
			{
				Year: 2004,
				Tiers: []domain.EarlyRetirementRule{
					{RuleSet: 3, FromBirthYear: intPtr(1952), ValidatedDuration: dec("168"), ContributedDuration: dec("164"), CareerStartAgeCeiling: dec("17"), OpeningAge: dec("59")},
					{RuleSet: 1, FromBirthYear: intPtr(1944), ToBirthYear: intPtr(1951), ValidatedDuration: dec("168"), ContributedDuration: dec("168"), CareerStartAgeCeiling: dec("16"), OpeningAge: dec("56")},
					{RuleSet: 2, ValidatedDuration: dec("168"), ContributedDuration: dec("168"), CareerStartAgeCeiling: dec("16"), OpeningAge: dec("57")},
				},
			},
			{
				Year: 2012,
				Tiers: []domain.EarlyRetirementRule{
					{RuleSet: 1, ValidatedDuration: dec("8"), ContributedDuration: dec("8"), CareerStartAgeCeiling: dec("16"), OpeningAge: dec("58"), RelativeToProration: true},
					{RuleSet: 2, FromBirthYear: intPtr(1952), ValidatedDuration: dec("0"), ContributedDuration: dec("0"), CareerStartAgeCeiling: dec("20"), OpeningAge: dec("60"), RelativeToProration: true},
				},
			},
		},
	}
}

func privateProfile(birthYear int) domain.Profile {
	return domain.Profile{
		ID:             "private",
		BirthYear:      birthYear,
		Sex:            domain.SexMale,
		Category:       domain.CategoryPrivate,
		CareerStartAge: dec("20"),
	}
}

func publicProfile(birthYear int, category domain.Category) domain.Profile {
	return domain.Profile{
		ID:                 "public",
		BirthYear:          birthYear,
		Sex:                domain.SexMale,
		Category:           category,
		CareerStartAge:     dec("22"),
		PublicServiceYears: dec("30"),
	}
}
