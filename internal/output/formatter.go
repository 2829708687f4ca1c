// Package output renders computed reports for the console and for machine
// consumption.
package output

import (
	"fmt"
	"os"
	"time"

	"github.com/tianming/city-selector/internal/domain"
)

// Report bundles everything one computation produces.
type Report struct {
	Input  domain.BirthInput           `yaml:"input" json:"input"`
	Bazi   *domain.BaziChart           `yaml:"bazi" json:"bazi"`
	Ziwei  *domain.ZiweiChart          `yaml:"ziwei" json:"ziwei"`
	Cities []domain.CityRecommendation `yaml:"cities" json:"cities"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file
// with the given extension.
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tianming_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
