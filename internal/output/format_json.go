package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/pensionleg/internal/batch"
	"github.com/rgehrsitz/pensionleg/internal/legislation"
)

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

type jsonResult struct {
	ProfileID  string                  `json:"profile_id"`
	Age        int                     `json:"age"`
	Parameters *legislation.Parameters `json:"parameters,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

func (jf *JSONFormatter) Name() string {
	if jf.Pretty {
		return "json-pretty"
	}
	return "json"
}

// Format generates JSON output for the results
func (jf *JSONFormatter) Format(results []batch.Result) ([]byte, error) {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{ProfileID: r.ProfileID, Age: r.Age, Parameters: r.Params}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}

	if jf.Pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
