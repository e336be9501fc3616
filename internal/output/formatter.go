package output

import (
	"sort"

	"github.com/rgehrsitz/pensionleg/internal/batch"
)

// Formatter renders resolution results
type Formatter interface {
	Name() string
	Format(results []batch.Result) ([]byte, error)
}

var formatters = map[string]Formatter{
	"table":       &TableFormatter{},
	"json":        &JSONFormatter{},
	"json-pretty": &JSONFormatter{Pretty: true},
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[name]
}

// AvailableFormats lists the registered formatter names
func AvailableFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
