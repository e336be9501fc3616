package legislation

import (
	"testing"

	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLatestVintage(t *testing.T) {
	rows := []domain.AveragingWindowVintage{
		{Year: 2010, Years: dec("25")},
		{Year: 2000, Years: dec("10")},
		{Year: 2005, Years: dec("20")},
	}

	tests := []struct {
		name     string
		year     int
		expected int
		found    bool
	}{
		{"Before every vintage", 1999, 0, false},
		{"Exact vintage", 2000, 2000, true},
		{"Between vintages", 2007, 2005, true},
		{"After the last vintage", 2040, 2010, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := latestVintage(rows, tt.year)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, row.Year)
		})
	}
}

func TestCohortRule(t *testing.T) {
	rules := []domain.PublicCohortRule{
		{BirthYear: 1955, SedentaryAge: dec("62")},
		{BirthYear: 1951, SedentaryAge: dec("60.33")},
	}

	tests := []struct {
		name      string
		birthYear int
		expected  int
	}{
		{"Older cohort gets earliest rule", 1940, 1951},
		{"Exact cohort", 1951, 1951},
		{"Between cohorts", 1953, 1951},
		{"Younger cohort", 1970, 1955},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := cohortRule(rules, tt.birthYear)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, rule.BirthYear)
		})
	}

	_, ok := cohortRule([]domain.PublicCohortRule{}, 1950)
	assert.False(t, ok, "No rules, nothing to fall back to")
}
