package output

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/pensionleg/internal/batch"
	"github.com/rgehrsitz/pensionleg/internal/legislation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []batch.Result {
	d := decimal.RequireFromString
	params := &legislation.Parameters{
		LegislationYear:        2015,
		Age:                    60,
		MinimaVintage:          2014,
		AverageWageVintage:     2008,
		PublicVintage:          2014,
		EarlyRetirementVintage: 2014,
		Private: &legislation.PrivateParameters{
			TargetDuration:    d("166"),
			ProrationDuration: d("166"),
			AveragingYears:    d("25"),
			FullRate:          d("0.5"),
			Reduction:         d("0.0125"),
			BonusTier1:        d("0.0125"),
			BonusTier2:        d("0.0125"),
			BonusTier3:        d("0.0125"),
			MaxRate:           d("0.5"),
			MinAge:            d("62"),
			MaxAge:            d("67"),
		},
		EarlyRetirement: []legislation.Tier{
			{RuleSet: 2, ValidatedDuration: d("166"), ContributedDuration: d("166"), CareerStartAgeCeiling: d("20"), OpeningAge: d("60")},
		},
	}
	return []batch.Result{
		{ProfileID: "alice", Age: 60, Params: params},
		{ProfileID: "bob", Age: -1, Err: errors.New("invalid age: must be non-negative, got -1")},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormats() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("html"), "Should return nil for unknown formats")
	assert.Equal(t, []string{"json", "json-pretty", "table"}, AvailableFormats())
}

func TestTableFormatter_Format(t *testing.T) {
	data, err := (&TableFormatter{}).Format(sampleResults())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Profile alice (age 60, legislation 2015)")
	assert.Contains(t, out, "166q")
	assert.Contains(t, out, "1.25%")
	assert.Contains(t, out, "Rule set 2")
	assert.Contains(t, out, "166q validated, 166q contributed, start <= 20, opens at 60")
	assert.Contains(t, out, notApplicable, "Absent schemes and tiers render as n/a")
	assert.Contains(t, out, "must be non-negative")
	assert.Contains(t, out, "1 resolved, 1 failed")
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		data, err := (&JSONFormatter{Pretty: pretty}).Format(sampleResults())
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 2)

		assert.Equal(t, "alice", decoded[0]["profile_id"])
		params, ok := decoded[0]["parameters"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 2014, params["minima_vintage"])
		assert.NotContains(t, params, "public", "Absent blocks are omitted, not zeroed")
		assert.NotContains(t, decoded[0], "error")

		assert.Equal(t, "bob", decoded[1]["profile_id"])
		assert.NotContains(t, decoded[1], "parameters")
		assert.Contains(t, decoded[1]["error"], "non-negative")
	}
}
