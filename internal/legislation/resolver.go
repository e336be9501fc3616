package legislation

import (
	"fmt"

	"github.com/rgehrsitz/pensionleg/internal/domain"
)

// request is the read-only input every resolution stage receives
type request struct {
	tables  *domain.LegislativeTables
	profile *domain.Profile
	age     int
	year    int
}

// stage computes one scheme's contribution from the request and the result
// built by the stages before it
type stage struct {
	name    string
	resolve func(req request, partial Parameters) (delta, error)
}

// pipeline is the fixed resolution order. Later stages read what earlier ones
// produced: early retirement reads the private proration duration, and the
// eligibility age reads the public (possibly special-overridden) ages.
var pipeline = []stage{
	{name: "private", resolve: resolvePrivate},
	{name: "public", resolve: resolvePublic},
	{name: "special", resolve: resolveSpecial},
	{name: "early_retirement", resolve: resolveEarlyRetirement},
	{name: "eligibility", resolve: resolveEligibility},
}

// Resolver resolves legislative parameters against a set of loaded tables.
// It holds no per-query state and is safe for concurrent use as long as the
// tables are not mutated.
type Resolver struct {
	Tables *domain.LegislativeTables
	Logger Logger
}

// NewResolver creates a resolver over the given tables
func NewResolver(tables *domain.LegislativeTables) *Resolver {
	return &Resolver{
		Tables: tables,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (r *Resolver) SetLogger(l Logger) {
	if l == nil {
		r.Logger = NopLogger{}
		return
	}
	r.Logger = l
}

// Resolve builds the parameters for one individual at one age under the
// legislation in force in legislationYear. The query either fully resolves or
// fails as a whole.
func (r *Resolver) Resolve(profile domain.Profile, age, legislationYear int) (*Parameters, error) {
	if err := r.validate(&profile, age, legislationYear); err != nil {
		return nil, err
	}

	req := request{
		tables:  r.Tables,
		profile: &profile,
		age:     age,
		year:    legislationYear,
	}
	result := Parameters{LegislationYear: legislationYear, Age: age}

	for _, s := range pipeline {
		d, err := s.resolve(req, result)
		if err != nil {
			r.Logger.Debugf("%s stage failed for %q at %d: %v", s.name, profile.ID, legislationYear, err)
			return nil, fmt.Errorf("resolving %s parameters: %w", s.name, err)
		}
		result = result.merge(d)
	}

	r.Logger.Debugf("resolved %q (born %d) at age %d under %d: vintages %v",
		profile.ID, profile.BirthYear, age, legislationYear, result.Vintages())
	return &result, nil
}

func (r *Resolver) validate(profile *domain.Profile, age, year int) error {
	if r.Tables == nil {
		return &InvalidInputError{Field: "tables", Reason: "no legislative tables loaded"}
	}
	if age < 0 {
		return &InvalidInputError{Field: "age", Reason: fmt.Sprintf("must be non-negative, got %d", age)}
	}
	earliest, ok := r.Tables.EarliestVintage()
	if !ok {
		return &InvalidInputError{Field: "tables", Reason: "tables define no vintage"}
	}
	if year < earliest {
		return &InvalidInputError{
			Field:  "legislation year",
			Reason: fmt.Sprintf("%d precedes the earliest vintage %d", year, earliest),
			Err:    &MissingVintageError{Scheme: "all", Year: year},
		}
	}
	if profile.BirthYear <= 0 {
		return &InvalidInputError{Field: "birth year", Reason: fmt.Sprintf("must be positive, got %d", profile.BirthYear)}
	}
	if !profile.CareerStartAge.IsPositive() {
		return &InvalidInputError{Field: "career start age", Reason: fmt.Sprintf("must be positive, got %s", profile.CareerStartAge)}
	}
	if profile.IsSpecial() && profile.SpecialScheme == "" {
		return &InvalidInputError{Field: "special scheme", Reason: "special category requires a scheme name"}
	}
	return nil
}
